package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vibeholidays/db"
	"vibeholidays/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestRecentFindOpts(t *testing.T) {
	opts := recentFindOpts("bookingid")

	if opts.Limit == nil || *opts.Limit != recentLimit {
		t.Fatalf("limit = %v, want %d", opts.Limit, recentLimit)
	}

	sort, ok := opts.Sort.(bson.D)
	if !ok {
		t.Fatalf("sort is %T, want bson.D", opts.Sort)
	}
	if len(sort) != 2 {
		t.Fatalf("sort has %d keys, want 2", len(sort))
	}
	if sort[0].Key != "createdAt" || sort[0].Value != -1 {
		t.Errorf("primary sort = %v, want createdAt descending", sort[0])
	}
	if sort[1].Key != "bookingid" || sort[1].Value != -1 {
		t.Errorf("tiebreak sort = %v, want bookingid descending", sort[1])
	}
}

// countResponse mocks the aggregation CountDocuments runs under the hood.
func countResponse(ns string, n int64) bson.D {
	if n == 0 {
		return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch)
	}
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: n}})
}

func runStats(mt *mtest.T) (*httptest.ResponseRecorder, models.DashboardStats) {
	db.BookingsCollection = mt.Coll
	db.InquiriesCollection = mt.Coll
	db.PackagesCollection = mt.Coll
	db.NewsletterCollection = mt.Coll

	r := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	w := httptest.NewRecorder()
	GetStats(w, r, nil)

	var stats models.DashboardStats
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
			mt.Fatalf("invalid JSON body: %v", err)
		}
	}
	return w, stats
}

func TestGetStatsEmptyStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty store serializes empty arrays", func(mt *mtest.T) {
		ns := "vibedb.stats"
		mt.AddMockResponses(
			countResponse(ns, 0), // bookings
			countResponse(ns, 0), // inquiries
			countResponse(ns, 0), // packages
			countResponse(ns, 0), // subscribers
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch), // revenue
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch), // recent bookings
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch), // recent inquiries
		)

		w, stats := runStats(mt)
		if w.Code != http.StatusOK {
			mt.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
		}

		if stats.Bookings.Total != 0 || stats.Revenue.Total != 0 {
			mt.Errorf("totals = %+v, want all zero", stats)
		}
		// Empty result sets must be [] in the JSON, never null.
		body := w.Body.String()
		if !strings.Contains(body, `"recentBookings":[]`) {
			mt.Errorf("recentBookings not serialized as []: %s", body)
		}
		if !strings.Contains(body, `"recentInquiries":[]`) {
			mt.Errorf("recentInquiries not serialized as []: %s", body)
		}
	})
}

func TestGetStatsTotalsAndRecent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("counts, revenue and recent lists land in the payload", func(mt *mtest.T) {
		ns := "vibedb.stats"
		newer := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
		older := newer.Add(-48 * time.Hour)

		mt.AddMockResponses(
			countResponse(ns, 2), // bookings
			countResponse(ns, 1), // inquiries
			countResponse(ns, 3), // packages
			countResponse(ns, 4), // subscribers
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "total", Value: 3500.0}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{
					{Key: "bookingid", Value: "bk222"},
					{Key: "customerName", Value: "Asha"},
					{Key: "email", Value: "asha@example.com"},
					{Key: "status", Value: "pending"},
					{Key: "totalPrice", Value: 2000.0},
					{Key: "createdAt", Value: primitive.NewDateTimeFromTime(newer)},
				},
				bson.D{
					{Key: "bookingid", Value: "bk111"},
					{Key: "customerName", Value: "Ravi"},
					{Key: "email", Value: "ravi@example.com"},
					{Key: "status", Value: "confirmed"},
					{Key: "totalPrice", Value: 1500.0},
					{Key: "createdAt", Value: primitive.NewDateTimeFromTime(older)},
				}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{
					{Key: "inquiryid", Value: "inq100"},
					{Key: "name", Value: "Meera"},
					{Key: "email", Value: "meera@example.com"},
					{Key: "message", Value: "Do you run Ladakh trips in winter?"},
					{Key: "status", Value: "new"},
					{Key: "createdAt", Value: primitive.NewDateTimeFromTime(newer)},
				}),
		)

		w, stats := runStats(mt)
		if w.Code != http.StatusOK {
			mt.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
		}

		if stats.Bookings.Total != 2 || stats.Inquiries.Total != 1 ||
			stats.Packages.Total != 3 || stats.Subscribers.Total != 4 {
			mt.Errorf("counts = %+v", stats)
		}
		if stats.Revenue.Total != 3500 {
			mt.Errorf("revenue = %v, want 3500", stats.Revenue.Total)
		}

		if len(stats.RecentBookings) != 2 {
			mt.Fatalf("recent bookings = %d, want 2", len(stats.RecentBookings))
		}
		first := stats.RecentBookings[0]
		if first.BookingID != "bk222" || first.CustomerName != "Asha" ||
			first.Status != "pending" || first.TotalPrice != 2000 {
			mt.Errorf("first recent booking = %+v", first)
		}
		if !first.CreatedAt.After(stats.RecentBookings[1].CreatedAt) {
			mt.Error("recent bookings are not newest first")
		}

		if len(stats.RecentInquiries) != 1 {
			mt.Fatalf("recent inquiries = %d, want 1", len(stats.RecentInquiries))
		}
		if stats.RecentInquiries[0].InquiryID != "inq100" || stats.RecentInquiries[0].Status != "new" {
			mt.Errorf("recent inquiry = %+v", stats.RecentInquiries[0])
		}
	})
}
