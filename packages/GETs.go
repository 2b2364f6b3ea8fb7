package packages

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"vibeholidays/db"
	"vibeholidays/models"
	"vibeholidays/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPackages serves the public catalog: active packages only, with
// AND-combined destination/price/duration filters and free-text search.
func GetPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := BuildCatalogFilter(r.URL.Query())

	skip, limit := utils.ParsePagination(r, 20, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "createdAt", Value: -1}}, map[string]bson.D{
		"newest":    {{Key: "createdAt", Value: -1}},
		"priceLow":  {{Key: "price", Value: 1}},
		"priceHigh": {{Key: "price", Value: -1}},
		"duration":  {{Key: "duration", Value: 1}},
	})

	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	results, err := utils.FindAndDecode[models.TravelPackage](ctx, db.PackagesCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch packages")
		return
	}

	total, err := db.PackagesCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count packages")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":  true,
		"packages": results,
		"total":    total,
	})
}

// BuildCatalogFilter turns catalog query params into a Mongo filter.
// Every predicate is ANDed and active:true is always pinned.
func BuildCatalogFilter(q map[string][]string) bson.M {
	get := func(key string) string {
		if v, ok := q[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	filter := bson.M{"active": true}

	if dest := get("destination"); dest != "" {
		filter["destination"] = bson.M{"$regex": regexp.QuoteMeta(dest), "$options": "i"}
	}
	if get("featured") == "true" {
		filter["featured"] = true
	}

	price := bson.M{}
	if v, err := strconv.ParseFloat(get("minPrice"), 64); err == nil {
		price["$gte"] = v
	}
	if v, err := strconv.ParseFloat(get("maxPrice"), 64); err == nil {
		price["$lte"] = v
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	duration := bson.M{}
	if v, err := strconv.Atoi(get("minDuration")); err == nil {
		duration["$gte"] = v
	}
	if v, err := strconv.Atoi(get("maxDuration")); err == nil {
		duration["$lte"] = v
	}
	if len(duration) > 0 {
		filter["duration"] = duration
	}

	if search := get("search"); search != "" {
		filter["$or"] = []bson.M{
			utils.RegexFilter("name", search),
			utils.RegexFilter("destination", search),
			utils.RegexFilter("description", search),
		}
	}

	return filter
}

// GetPackage returns one active package for the public site.
func GetPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var pkg models.TravelPackage
	err := db.PackagesCollection.FindOne(r.Context(), bson.M{
		"packageid": ps.ByName("id"),
		"active":    true,
	}).Decode(&pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Package not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "package": pkg})
}
