package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/auctionService"
	model "github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/models"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/repository"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/seed"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter wires the full stack over the demo catalogue. Latency is
// zero and the clock is frozen so expiry behavior is deterministic.
func SetupTestRouter(now time.Time) *gin.Engine {
	return SetupTestRouterWith(seed.SampleAuctions(now), seed.SampleUsers(), now)
}

// SetupTestRouterWith wires the full stack over caller-chosen seed data.
func SetupTestRouterWith(auctions []model.AuctionItem, users []model.User, now time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore(auctions, users)
	service := auction.NewAuctionService(store,
		auction.WithClock(func() time.Time { return now }),
	)
	return server.SetupRouter(service)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// dataObject extracts the "data" field of the envelope as an object.
func dataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp)
	}
	return data
}

// dataList extracts the "data" field of the envelope as a list.
func dataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response data is not a list: %v", resp)
	}
	return data
}
