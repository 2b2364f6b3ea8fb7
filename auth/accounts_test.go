package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vibeholidays/db"
	"vibeholidays/globals"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"golang.org/x/crypto/bcrypt"
)

const usersNS = "vibedb.users"

// nextCommand pops captured command events until it finds one with the
// given name, or nil once the capture is exhausted.
func nextCommand(mt *mtest.T, name string) *event.CommandStartedEvent {
	for {
		evt := mt.GetStartedEvent()
		if evt == nil {
			return nil
		}
		if evt.CommandName == name {
			return evt
		}
	}
}

func TestRegisterClosedOnceUserExists(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second registration is rejected", func(mt *mtest.T) {
		db.UserCollection = mt.Coll
		// CountDocuments sees one existing account.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch,
			bson.D{{Key: "n", Value: int64(1)}}))

		body := `{"username":"visitor","email":"visitor@example.com","password":"longenough1"}`
		r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		w := httptest.NewRecorder()

		Register(w, r, nil)

		if w.Code != http.StatusForbidden {
			mt.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
		}
		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			mt.Fatalf("invalid JSON body: %v", err)
		}
		if resp.Success {
			mt.Error("success = true on rejected registration")
		}
		if resp.Message == "" {
			mt.Error("expected a message explaining the rejection")
		}
		// The handler must bail before ever writing a user.
		if evt := nextCommand(mt, "insert"); evt != nil {
			mt.Error("an insert was issued for a rejected registration")
		}
	})
}

func TestRegisterBootstrapTrimsAndHashes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("first account is stored trimmed with a hashed password", func(mt *mtest.T) {
		db.UserCollection = mt.Coll
		mt.AddMockResponses(
			// Empty users collection: count aggregation yields no document.
			mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		body := `{"username":"  admin  ","email":"Admin@Example.com","password":"s3cretpass"}`
		r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		w := httptest.NewRecorder()

		Register(w, r, nil)

		if w.Code != http.StatusCreated {
			mt.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
		}

		evt := nextCommand(mt, "insert")
		if evt == nil {
			mt.Fatal("no insert command captured")
		}
		docs, err := evt.Command.Lookup("documents").Array().Values()
		if err != nil || len(docs) != 1 {
			mt.Fatalf("expected one inserted document, got %d (err %v)", len(docs), err)
		}
		doc := docs[0].Document()

		if got := doc.Lookup("username").StringValue(); got != "admin" {
			mt.Errorf("stored username = %q, want %q", got, "admin")
		}
		if got := doc.Lookup("email").StringValue(); got != "admin@example.com" {
			mt.Errorf("stored email = %q, want %q", got, "admin@example.com")
		}
		hash := doc.Lookup("password").StringValue()
		if hash == "s3cretpass" {
			mt.Fatal("plaintext password was stored")
		}
		if !bcryptPattern.MatchString(hash) {
			mt.Errorf("stored password %q is not a bcrypt hash", hash)
		}
	})
}

func TestUpdatePasswordSetsOnlyPasswordFields(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("update touches password and updatedAt only", func(mt *mtest.T) {
		db.UserCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		if err := UpdatePassword(context.Background(), "u42", "brandnewpass"); err != nil {
			mt.Fatalf("UpdatePassword: %v", err)
		}

		evt := nextCommand(mt, "update")
		if evt == nil {
			mt.Fatal("no update command captured")
		}
		updates, err := evt.Command.Lookup("updates").Array().Values()
		if err != nil || len(updates) != 1 {
			mt.Fatalf("expected one update statement, got %d (err %v)", len(updates), err)
		}
		set := updates[0].Document().Lookup("u").Document().Lookup("$set").Document()

		elems, err := set.Elements()
		if err != nil {
			mt.Fatalf("reading $set: %v", err)
		}
		keys := map[string]bool{}
		for _, e := range elems {
			keys[e.Key()] = true
		}
		if len(keys) != 2 || !keys["password"] || !keys["updatedAt"] {
			mt.Fatalf("$set keys = %v, want exactly password and updatedAt", keys)
		}

		hash := set.Lookup("password").StringValue()
		if !bcryptPattern.MatchString(hash) {
			mt.Fatalf("stored password %q is not a bcrypt hash", hash)
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte("brandnewpass")) != nil {
			mt.Error("stored hash does not verify against the new password")
		}
	})
}

func TestChangePasswordHandler(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	hash, err := HashPassword("oldpassword1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	userDoc := bson.D{
		{Key: "userid", Value: "u42"},
		{Key: "username", Value: "admin"},
		{Key: "email", Value: "admin@example.com"},
		{Key: "password", Value: hash},
		{Key: "role", Value: "admin"},
	}

	changeReq := func(body string) *http.Request {
		r := httptest.NewRequest(http.MethodPut, "/api/auth/password", strings.NewReader(body))
		return r.WithContext(context.WithValue(r.Context(), globals.UserIDKey, "u42"))
	}

	mt.Run("rehashes after verifying the current password", func(mt *mtest.T) {
		db.UserCollection = mt.Coll
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, userDoc),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		w := httptest.NewRecorder()
		ChangePassword(w, changeReq(`{"currentPassword":"oldpassword1","newPassword":"newpassword1"}`), nil)

		if w.Code != http.StatusOK {
			mt.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
		}
		if evt := nextCommand(mt, "update"); evt == nil {
			mt.Fatal("no update command captured")
		}
	})

	mt.Run("wrong current password is rejected before any write", func(mt *mtest.T) {
		db.UserCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, userDoc))

		w := httptest.NewRecorder()
		ChangePassword(w, changeReq(`{"currentPassword":"wrongwrong1","newPassword":"newpassword1"}`), nil)

		if w.Code != http.StatusUnauthorized {
			mt.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
		if evt := nextCommand(mt, "update"); evt != nil {
			mt.Error("an update was issued despite a failed password check")
		}
	})

	mt.Run("short replacement password is rejected", func(mt *mtest.T) {
		db.UserCollection = mt.Coll

		w := httptest.NewRecorder()
		ChangePassword(w, changeReq(`{"currentPassword":"oldpassword1","newPassword":"short"}`), nil)

		if w.Code != http.StatusBadRequest {
			mt.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
