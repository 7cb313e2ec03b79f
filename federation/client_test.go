package federation_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lcadata/assembly_backend/federation"
)

func graphServer(t *testing.T, status int, body string) (*federation.Client, *http.Request) {
	t.Helper()

	var captured http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return federation.NewClientWithURL(server.URL), &captured
}

func TestGetSchemaElementParsesResponse(t *testing.T) {
	client, captured := graphServer(t, http.StatusOK,
		`{"data":{"schemaElements":[{"id":"element-1","assemblyId":"assembly-1"}]}}`)

	element, err := client.GetSchemaElement(context.Background(), "token-1", []string{"cat-1"}, "element-1")
	if err != nil {
		t.Fatalf("GetSchemaElement: %v", err)
	}
	if element == nil || element.ID != "element-1" {
		t.Fatalf("element = %+v", element)
	}
	if element.AssemblyId == nil || *element.AssemblyId != "assembly-1" {
		t.Fatalf("assembly id = %v", element.AssemblyId)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer token-1" {
		t.Fatalf("authorization header = %q, expected the caller token forwarded", got)
	}
}

func TestGetSchemaElementEmptyResult(t *testing.T) {
	client, _ := graphServer(t, http.StatusOK, `{"data":{"schemaElements":[]}}`)

	element, err := client.GetSchemaElement(context.Background(), "", nil, "element-1")
	if err != nil {
		t.Fatalf("GetSchemaElement: %v", err)
	}
	if element != nil {
		t.Fatalf("element = %+v, expected nil for an empty result", element)
	}
}

func TestConnectionErrorOnHTTPFailure(t *testing.T) {
	client, _ := graphServer(t, http.StatusBadGateway, "upstream down")

	_, err := client.GetSchemaElement(context.Background(), "", nil, "element-1")
	var connErr *federation.ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("error = %v, expected a connection error", err)
	}
}

func TestResponseErrorCarriesGraphMessages(t *testing.T) {
	client, _ := graphServer(t, http.StatusOK,
		`{"errors":[{"message":"project not found"},{"message":"access denied"}]}`)

	_, err := client.GetSchemaElement(context.Background(), "", nil, "element-1")
	var respErr *federation.ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("error = %v, expected a response error", err)
	}
	if len(respErr.Messages) != 2 || respErr.Messages[0] != "project not found" {
		t.Fatalf("messages = %v", respErr.Messages)
	}
}

func TestProjectExists(t *testing.T) {
	client, _ := graphServer(t, http.StatusOK, `{"data":{"projects":[{"id":"proj-1"}]}}`)
	ok, err := client.ProjectExists(context.Background(), "token-1", "proj-1")
	if err != nil {
		t.Fatalf("ProjectExists: %v", err)
	}
	if !ok {
		t.Fatalf("ProjectExists = false, expected true")
	}

	client, _ = graphServer(t, http.StatusOK, `{"data":{"projects":[]}}`)
	ok, err = client.ProjectExists(context.Background(), "token-1", "proj-2")
	if err != nil {
		t.Fatalf("ProjectExists (empty): %v", err)
	}
	if ok {
		t.Fatalf("ProjectExists = true, expected false for an empty result")
	}
}

func TestProjectExistsSendsProjectIdVariable(t *testing.T) {
	var variables map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request struct {
			Variables map[string]interface{} `json:"variables"`
		}
		_ = json.NewDecoder(r.Body).Decode(&request)
		variables = request.Variables
		_, _ = w.Write([]byte(`{"data":{"projects":[]}}`))
	}))
	defer server.Close()

	client := federation.NewClientWithURL(server.URL)
	if _, err := client.ProjectExists(context.Background(), "", "proj-1"); err != nil {
		t.Fatalf("ProjectExists: %v", err)
	}
	if variables["id"] != "proj-1" {
		t.Fatalf("variables = %v, expected the project id", variables)
	}
}
