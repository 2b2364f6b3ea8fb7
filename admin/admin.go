package admin

import (
	"context"
	"net/http"
	"time"

	"vibeholidays/db"
	"vibeholidays/models"
	"vibeholidays/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recentLimit = 10

// recentFindOpts sorts newest first, with the id as tiebreak for
// documents created in the same instant.
func recentFindOpts(idField string) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: idField, Value: -1}}).
		SetLimit(recentLimit)
}

// GetStats assembles the admin dashboard: totals plus the ten most
// recent bookings and inquiries, newest first.
func GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats := models.DashboardStats{
		RecentBookings:  []models.RecentBooking{},
		RecentInquiries: []models.RecentInquiry{},
	}

	var err error
	if stats.Bookings.Total, err = db.BookingsCollection.CountDocuments(ctx, bson.M{}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate stats")
		return
	}
	if stats.Inquiries.Total, err = db.InquiriesCollection.CountDocuments(ctx, bson.M{}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate stats")
		return
	}
	if stats.Packages.Total, err = db.PackagesCollection.CountDocuments(ctx, bson.M{}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate stats")
		return
	}
	if stats.Subscribers.Total, err = db.NewsletterCollection.CountDocuments(ctx, bson.M{}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate stats")
		return
	}

	if stats.Revenue.Total, err = totalRevenue(ctx); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate stats")
		return
	}

	stats.RecentBookings, err = utils.FindAndDecode[models.RecentBooking](ctx,
		db.BookingsCollection, bson.M{}, recentFindOpts("bookingid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate stats")
		return
	}

	stats.RecentInquiries, err = utils.FindAndDecode[models.RecentInquiry](ctx,
		db.InquiriesCollection, bson.M{}, recentFindOpts("inquiryid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate stats")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// totalRevenue sums totalPrice over every booking.
func totalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$totalPrice"},
		}}},
	}

	cursor, err := db.BookingsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var out []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}
