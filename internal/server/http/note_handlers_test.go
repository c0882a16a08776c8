package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
)

func createNote(t *testing.T, router http.Handler, userID, title, content string) string {
	t.Helper()
	payload := fmt.Sprintf(`{"userId":%q,"title":%q,"content":%q}`, userID, title, content)
	rec, body := doRequest(t, router, http.MethodPost, "/api/createNote", payload, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id, ok := body["noteId"].(string)
	require.True(t, ok, "noteId missing in %v", body)
	return id
}

func TestCreateAndGetNote(t *testing.T) {
	t.Parallel()
	router := newTestServer(&fakeAuth{}, newFakeNoteSvc()).Router()

	id := createNote(t, router, "u1", "Test Note", "hello")

	rec, body := doRequest(t, router, http.MethodGet, "/api/"+id, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Test Note", body["title"])
	require.Equal(t, "hello", body["content"])
	require.Equal(t, "Uncategorized", body["category"])
	require.Equal(t, "No", body["isFavorite"])
	require.Equal(t, "u1", body["userId"])
}

func TestCreateNote_Validation(t *testing.T) {
	t.Parallel()
	router := newTestServer(&fakeAuth{}, newFakeNoteSvc()).Router()

	rec, body := doRequest(t, router, http.MethodPost, "/api/createNote",
		`{"userId":"u1","title":"t"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "User ID, title, and content are required", body["message"])

	rec, _ = doRequest(t, router, http.MethodPost, "/api/createNote", `{broken`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListNotes(t *testing.T) {
	t.Parallel()
	router := newTestServer(&fakeAuth{}, newFakeNoteSvc()).Router()

	created := map[string]bool{}
	for i := 0; i < 3; i++ {
		id := createNote(t, router, "u1", fmt.Sprintf("n%d", i), "c")
		created[id] = true
	}
	createNote(t, router, "u2", "other", "c")

	rec, _ := doRequest(t, router, http.MethodGet, "/api/getNotes?userId=u1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var notes []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 3)
	for _, n := range notes {
		require.Equal(t, "u1", n["userId"])
		require.True(t, created[n["id"].(string)], "unexpected note %v", n["id"])
	}

	// unknown owner gets an empty array, not an error
	rec, _ = doRequest(t, router, http.MethodGet, "/api/getNotes?userId=nobody", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestUpdateNote(t *testing.T) {
	t.Parallel()
	router := newTestServer(&fakeAuth{}, newFakeNoteSvc()).Router()
	id := createNote(t, router, "u1", "t", "c")

	rec, body := doRequest(t, router, http.MethodPut, "/api/"+id,
		`{"title":"t2","content":"c2","category":"Work"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "t2", body["title"])
	require.Equal(t, "Work", body["category"])

	missing := uuid.Must(uuid.NewV4()).String()
	rec, body = doRequest(t, router, http.MethodPut, "/api/"+missing,
		`{"title":"t","content":"c","category":"x"}`, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Note not found", body["message"])
}

func TestDeleteNote(t *testing.T) {
	t.Parallel()
	router := newTestServer(&fakeAuth{}, newFakeNoteSvc()).Router()
	id := createNote(t, router, "u1", "t", "c")

	rec, body := doRequest(t, router, http.MethodDelete, "/api/"+id, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Note deleted successfully", body["message"])

	// delete then get -> not found
	rec, _ = doRequest(t, router, http.MethodGet, "/api/"+id, "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doRequest(t, router, http.MethodDelete, "/api/"+id, "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetFavorite(t *testing.T) {
	t.Parallel()
	router := newTestServer(&fakeAuth{}, newFakeNoteSvc()).Router()
	id := createNote(t, router, "u1", "t", "c")

	rec, body := doRequest(t, router, http.MethodPatch, "/api/"+id+"/favorite",
		`{"isFavorite":"Yes"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Yes", body["isFavorite"])

	rec, body = doRequest(t, router, http.MethodPatch, "/api/"+id+"/favorite",
		`{"isFavorite":"No"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "No", body["isFavorite"])

	rec, body = doRequest(t, router, http.MethodPatch, "/api/"+id+"/favorite",
		`{"isFavorite":"maybe"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid value for isFavorite", body["message"])

	missing := uuid.Must(uuid.NewV4()).String()
	rec, _ = doRequest(t, router, http.MethodPatch, "/api/"+missing+"/favorite",
		`{"isFavorite":"Yes"}`, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetCategory(t *testing.T) {
	t.Parallel()
	router := newTestServer(&fakeAuth{}, newFakeNoteSvc()).Router()
	id := createNote(t, router, "u1", "t", "c")

	rec, body := doRequest(t, router, http.MethodPatch, "/api/"+id+"/category",
		`{"category":"Ideas"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Ideas", body["category"])

	rec, body = doRequest(t, router, http.MethodPatch, "/api/"+id+"/category",
		`{"category":""}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Category is required", body["message"])
}

func TestGetNote_MalformedID(t *testing.T) {
	t.Parallel()
	router := newTestServer(&fakeAuth{}, newFakeNoteSvc()).Router()

	rec, body := doRequest(t, router, http.MethodGet, "/api/not-a-uuid", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Note not found", body["message"])
}
