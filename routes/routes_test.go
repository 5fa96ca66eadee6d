package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/configs"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/repository"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/routes"
)

func setup(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	menu, err := configs.LoadMenu()
	if err != nil {
		t.Fatalf("load menu: %v", err)
	}
	offers, err := configs.LoadOffers()
	if err != nil {
		t.Fatalf("load offers: %v", err)
	}

	r := gin.New()
	// zero delays keep the simulated gateways instant in tests
	routes.RegisterRoutes(r, repository.NewMemoryStore(), menu, offers, &configs.Config{})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer res.Body.Close()
	var decoded map[string]any
	_ = json.NewDecoder(res.Body).Decode(&decoded)
	return res, decoded
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("no data in response: %v", body)
	}
	return d
}

func TestMenuEndpoints(t *testing.T) {
	srv := setup(t)

	res, body := do(t, "GET", srv.URL+"/menu", nil)
	if res.StatusCode != 200 {
		t.Fatalf("status = %d", res.StatusCode)
	}
	items := data(t, body)["items"].([]any)
	if len(items) != 18 {
		t.Errorf("menu has %d items, want 18", len(items))
	}

	res, body = do(t, "GET", srv.URL+"/menu?category=starters", nil)
	if got := len(data(t, body)["items"].([]any)); got != 3 {
		t.Errorf("starters = %d, want 3", got)
	}

	res, _ = do(t, "GET", srv.URL+"/menu/samosa", nil)
	if res.StatusCode != 200 {
		t.Errorf("menu detail status = %d", res.StatusCode)
	}
	res, _ = do(t, "GET", srv.URL+"/menu/unknown-dish", nil)
	if res.StatusCode != 404 {
		t.Errorf("missing item status = %d, want 404", res.StatusCode)
	}
}

func TestCartFlow(t *testing.T) {
	srv := setup(t)

	item := map[string]any{"id": "samosa", "name": "Crispy Samosa", "price": 60, "isVeg": true}
	res, _ := do(t, "POST", srv.URL+"/cart/items", item)
	if res.StatusCode != 201 {
		t.Fatalf("add status = %d", res.StatusCode)
	}
	do(t, "POST", srv.URL+"/cart/items", item)

	_, body := do(t, "GET", srv.URL+"/cart", nil)
	d := data(t, body)
	if d["totalItems"].(float64) != 2 || d["totalPrice"].(float64) != 120 {
		t.Errorf("cart totals = %v/%v, want 2/120", d["totalItems"], d["totalPrice"])
	}
	if len(d["items"].([]any)) != 1 {
		t.Errorf("expected single merged line")
	}

	res, _ = do(t, "PATCH", srv.URL+"/cart/items/samosa", map[string]any{"quantity": 0})
	if res.StatusCode != 200 {
		t.Fatalf("patch status = %d", res.StatusCode)
	}
	_, body = do(t, "GET", srv.URL+"/cart", nil)
	if got := data(t, body)["totalItems"].(float64); got != 0 {
		t.Errorf("totalItems = %v after qty 0, want 0", got)
	}
}

func TestCartAddValidation(t *testing.T) {
	srv := setup(t)
	res, _ := do(t, "POST", srv.URL+"/cart/items", map[string]any{"name": "Free Thing", "price": 0})
	if res.StatusCode != 400 {
		t.Errorf("status = %d, want 400", res.StatusCode)
	}
}

func TestCheckoutFlow(t *testing.T) {
	srv := setup(t)

	do(t, "POST", srv.URL+"/cart/items", map[string]any{"id": "biryani", "name": "Hyderabadi Biryani", "price": 350})

	payload := map[string]any{
		"name":          "John Doe",
		"email":         "john@example.com",
		"phone":         "+91 98765 43210",
		"address":       "123 MG Road, Pune, Maharashtra",
		"paymentMethod": "cod",
	}
	res, body := do(t, "POST", srv.URL+"/checkout", payload)
	if res.StatusCode != 201 {
		t.Fatalf("checkout status = %d: %v", res.StatusCode, body)
	}
	order := data(t, body)["order"].(map[string]any)
	if order["earnedPoints"].(float64) != 30 {
		t.Errorf("earnedPoints = %v, want 30", order["earnedPoints"])
	}

	// points landed on the ledger
	_, body = do(t, "GET", srv.URL+"/rewards", nil)
	account := data(t, body)["account"].(map[string]any)
	if account["points"].(float64) != 30 {
		t.Errorf("points = %v, want 30", account["points"])
	}

	// cart was cleared, so a second checkout is rejected
	res, _ = do(t, "POST", srv.URL+"/checkout", payload)
	if res.StatusCode != 400 {
		t.Errorf("empty-cart checkout status = %d, want 400", res.StatusCode)
	}
}

func TestRewardsRedeemInsufficient(t *testing.T) {
	srv := setup(t)
	res, _ := do(t, "POST", srv.URL+"/rewards/redeem", map[string]any{"rewardId": 1})
	if res.StatusCode != 409 {
		t.Errorf("status = %d, want 409", res.StatusCode)
	}
	_, body := do(t, "GET", srv.URL+"/rewards", nil)
	account := data(t, body)["account"].(map[string]any)
	if account["points"].(float64) != 0 {
		t.Errorf("points changed: %v", account["points"])
	}
}

func TestReferralApplyOnce(t *testing.T) {
	srv := setup(t)

	res, _ := do(t, "POST", srv.URL+"/rewards/referral", map[string]any{"code": "RINKUAB123", "email": "f@example.com"})
	if res.StatusCode != 200 {
		t.Fatalf("first apply status = %d", res.StatusCode)
	}
	res, _ = do(t, "POST", srv.URL+"/rewards/referral", map[string]any{"code": "RINKUZZ999", "email": "f@example.com"})
	if res.StatusCode != 409 {
		t.Errorf("second apply status = %d, want 409", res.StatusCode)
	}

	_, body := do(t, "GET", srv.URL+"/rewards", nil)
	account := data(t, body)["account"].(map[string]any)
	if account["points"].(float64) != 50 {
		t.Errorf("points = %v, want 50", account["points"])
	}
}

func TestReviewFlow(t *testing.T) {
	srv := setup(t)

	res, _ := do(t, "POST", srv.URL+"/reviews", map[string]any{"name": "K", "comment": "short", "rating": 9})
	if res.StatusCode != 400 {
		t.Errorf("invalid review status = %d, want 400", res.StatusCode)
	}

	res, _ = do(t, "POST", srv.URL+"/reviews", map[string]any{
		"name": "Kiran Rao", "comment": "Wonderful dal makhani, will come again!", "rating": 5,
	})
	if res.StatusCode != 201 {
		t.Fatalf("review status = %d", res.StatusCode)
	}

	_, body := do(t, "GET", srv.URL+"/reviews", nil)
	items := data(t, body)["items"].([]any)
	if len(items) != 4 {
		t.Errorf("reviews = %d, want 4 (1 user + 3 seeds)", len(items))
	}
}

func TestReservationEndpoint(t *testing.T) {
	srv := setup(t)

	res, _ := do(t, "POST", srv.URL+"/reservations", map[string]any{
		"name": "John Doe", "email": "john@example.com", "phone": "+91 98765 43210",
		"date": "2099-01-01", "time": "7:00 PM", "guests": "4",
	})
	if res.StatusCode != 201 {
		t.Fatalf("reservation status = %d", res.StatusCode)
	}

	res, _ = do(t, "POST", srv.URL+"/reservations", map[string]any{
		"name": "John Doe", "email": "john@example.com", "phone": "+91 98765 43210",
		"date": "2099-01-01", "time": "3:00 AM", "guests": "4",
	})
	if res.StatusCode != 400 {
		t.Errorf("bad slot status = %d, want 400", res.StatusCode)
	}
}

func TestNotFoundFallback(t *testing.T) {
	srv := setup(t)
	res, body := do(t, "GET", srv.URL+"/no-such-page", nil)
	if res.StatusCode != 404 {
		t.Errorf("status = %d, want 404", res.StatusCode)
	}
	if ok, _ := body["ok"].(bool); ok {
		t.Error("ok should be false on 404")
	}
}

func TestOffersEndpoint(t *testing.T) {
	srv := setup(t)
	_, body := do(t, "GET", srv.URL+"/offers", nil)
	d := data(t, body)
	offers := d["offers"].(map[string]any)
	if len(offers["daily"].([]any)) != 3 {
		t.Errorf("daily deals = %d, want 3", len(offers["daily"].([]any)))
	}
	if len(offers["combos"].([]any)) != 3 {
		t.Errorf("combos = %d, want 3", len(offers["combos"].([]any)))
	}
	if len(offers["seasonal"].([]any)) != 2 {
		t.Errorf("seasonal = %d, want 2", len(offers["seasonal"].([]any)))
	}
	if _, ok := d["countdown"].(map[string]any); !ok {
		t.Error("missing countdown")
	}
}

func TestStaticPages(t *testing.T) {
	srv := setup(t)
	for _, path := range []string{"/", "/about", "/gallery", "/contact", "/reservations/slots", "/health"} {
		res, _ := do(t, "GET", srv.URL+path, nil)
		if res.StatusCode != 200 {
			t.Errorf("GET %s = %d, want 200", path, res.StatusCode)
		}
	}
}
