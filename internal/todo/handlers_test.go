package todo

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTodoRouter(seed []Todo) (*gin.Engine, *Store) {
	gin.SetMode(gin.TestMode)
	store := NewStore(seed)
	r := gin.New()
	NewHandler(store).Register(r.Group("/todos"))
	return r, store
}

func doJSON(r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestTodoHandler_List(t *testing.T) {
	r, _ := newTodoRouter(DefaultSeed())
	rr := doJSON(r, "GET", "/todos", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var items []Todo
	if err := json.Unmarshal(rr.Body.Bytes(), &items); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(items) != 4 {
		t.Errorf("expected 4 items, got %d", len(items))
	}
}

func TestTodoHandler_List_Filters(t *testing.T) {
	r, _ := newTodoRouter(DefaultSeed())

	rr := doJSON(r, "GET", "/todos?done=true", nil)
	var items []Todo
	if err := json.Unmarshal(rr.Body.Bytes(), &items); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 done items, got %d", len(items))
	}

	rr = doJSON(r, "GET", "/todos?done=maybe", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad done value, got %d", rr.Code)
	}

	rr = doJSON(r, "GET", "/todos?page=0&limit=2", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-positive page, got %d", rr.Code)
	}

	rr = doJSON(r, "GET", "/todos?page=1&limit=2", nil)
	if err := json.Unmarshal(rr.Body.Bytes(), &items); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items on page 1, got %d", len(items))
	}
}

func TestTodoHandler_Get(t *testing.T) {
	r, _ := newTodoRouter(DefaultSeed())

	rr := doJSON(r, "GET", "/todos/1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	rr = doJSON(r, "GET", "/todos/99", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["error"] != "Todo not found" {
		t.Errorf("unexpected error: %q", body["error"])
	}

	// Non-numeric ids read as missing resources.
	rr = doJSON(r, "GET", "/todos/abc", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-numeric id, got %d", rr.Code)
	}
}

func TestTodoHandler_Create(t *testing.T) {
	r, _ := newTodoRouter(DefaultSeed())

	rr := doJSON(r, "POST", "/todos", gin.H{"title": "x"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var created Todo
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if created.ID != 5 {
		t.Errorf("expected id 5 (previous max + 1), got %d", created.ID)
	}
	if created.Done {
		t.Error("done should default to false")
	}
}

func TestTodoHandler_Create_MissingTitle(t *testing.T) {
	r, _ := newTodoRouter(DefaultSeed())

	for _, payload := range []any{gin.H{}, gin.H{"title": ""}, gin.H{"done": true}} {
		rr := doJSON(r, "POST", "/todos", payload)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rr.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not valid JSON: %v", err)
		}
		if body["error"] != "Invalid request. 'title' is required." {
			t.Errorf("unexpected error: %q", body["error"])
		}
	}
}

func TestTodoHandler_Replace(t *testing.T) {
	r, _ := newTodoRouter(DefaultSeed())

	rr := doJSON(r, "PUT", "/todos/1", gin.H{"title": "new", "done": true, "description": "d"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	// All three fields are required for a full replace.
	rr = doJSON(r, "PUT", "/todos/1", gin.H{"title": "new"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for partial body, got %d", rr.Code)
	}
}

func TestTodoHandler_Replace_MissingItemWinsOverBadBody(t *testing.T) {
	r, _ := newTodoRouter(DefaultSeed())

	// Even a malformed payload against a missing item reports 404.
	rr := doJSON(r, "PUT", "/todos/99", gin.H{"title": "new"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestTodoHandler_Patch(t *testing.T) {
	r, store := newTodoRouter(DefaultSeed())

	rr := doJSON(r, "PATCH", "/todos/1", gin.H{"done": true})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	item, _ := store.Get(1)
	if !item.Done {
		t.Error("expected done updated")
	}
	if item.Title != "Buy groceries" {
		t.Error("expected title untouched by partial update")
	}

	rr = doJSON(r, "PATCH", "/todos/99", gin.H{"done": true})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestTodoHandler_Delete_ThenSecondDelete404(t *testing.T) {
	r, _ := newTodoRouter(DefaultSeed())

	rr := doJSON(r, "DELETE", "/todos/2", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["message"] != "Todo deleted successfully" {
		t.Errorf("unexpected message: %q", body["message"])
	}

	rr = doJSON(r, "DELETE", "/todos/2", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rr.Code)
	}
}
