package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(srv.URL, 2*time.Second, func() string { return token }, zerolog.Nop())
	return c, srv
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}), "tok-123")

	if _, err := c.Restaurants(context.Background()); err != nil {
		t.Fatalf("Restaurants: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}), "")

	if _, err := c.Restaurants(context.Background()); err != nil {
		t.Fatalf("Restaurants: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("unexpected Authorization header: %q", gotAuth)
	}
}

func TestClient_UnauthorizedFiresHookAndMapsError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"invalid token"}`))
	}), "stale")

	fired := false
	c.OnUnauthorized(func() { fired = true })

	_, err := c.MyOrders(context.Background())
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if !fired {
		t.Fatalf("unauthorized hook not fired")
	}
}

func TestClient_LoginDoesNotFireUnauthorizedHook(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"invalid email or password"}`))
	}), "")

	fired := false
	c.OnUnauthorized(func() { fired = true })

	res, err := c.Login(context.Background(), ports.Credentials{Email: "a@b.co", Password: "bad"})
	if err != nil {
		t.Fatalf("Login transport error: %v", err)
	}
	if res.Success {
		t.Fatalf("expected unsuccessful login result")
	}
	if res.Message != "invalid email or password" {
		t.Fatalf("server message lost: %q", res.Message)
	}
	if fired {
		t.Fatalf("failed login must not look like an expired session")
	}
}

func TestClient_ForbiddenMapsToErrPermission(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success":false,"message":"forbidden"}`))
	}), "tok")

	_, err := c.OwnerRestaurants(context.Background())
	if !errors.Is(err, domain.ErrPermission) {
		t.Fatalf("expected ErrPermission, got %v", err)
	}
}

func TestClient_ServerErrorMapsToAPIError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"message":"order can no longer be cancelled"}`))
	}), "tok")

	err := c.CancelOrder(context.Background(), "o-1")
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity || apiErr.Message != "order can no longer be cancelled" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestClient_NetworkFailureMapsToErrNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, time.Second, func() string { return "" }, zerolog.Nop())
	_, err := c.Restaurants(context.Background())
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestClient_PlaceOrderDecodesOrderID(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/place" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"message":"order placed","data":{"orderId":"o-42"}}`))
	}), "tok")

	id, err := c.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		RestaurantID: "r-1",
		Items:        []ports.OrderItemInput{{MenuItemID: "m-1", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if id != "o-42" {
		t.Fatalf("order id = %q, want o-42", id)
	}
}

func TestClient_LoginDecodesPayload(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"login successful","data":{
			"accessToken":"tok-1","role":"RESTAURANT_OWNER","fullname":"Olivia Owner",
			"restaurants":[{"id":"r-1","name":"One"}]}}`))
	}), "")

	res, err := c.Login(context.Background(), ports.Credentials{Email: "o@x.co", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !res.Success || res.Data.AccessToken != "tok-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Data.Role != domain.RoleRestaurantOwner || len(res.Data.Restaurants) != 1 {
		t.Fatalf("payload not decoded: %+v", res.Data)
	}
}

func TestClient_NonJSONBodyIsUnsuccessful(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>proxy error</html>`))
	}), "")

	res, err := c.Login(context.Background(), ports.Credentials{Email: "a@b.co", Password: "pw"})
	if err != nil {
		t.Fatalf("Login transport error: %v", err)
	}
	if res.Success {
		t.Fatalf("garbage body decoded as success")
	}
}
