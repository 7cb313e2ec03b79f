package federation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ConnectionError means the router could not be reached or answered with a
// non-success HTTP status. Callers may retry.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("federation router unreachable: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ResponseError means the router answered but the GraphQL payload carried an
// error list.
type ResponseError struct {
	Messages []string
}

func (e *ResponseError) Error() string {
	return "federation router returned errors: " + strings.Join(e.Messages, "; ")
}

type Client struct {
	routerURL string
	http      *http.Client
}

// NewClient reads the router graph endpoint from ROUTER_URL.
func NewClient() *Client {
	routerURL := strings.TrimSpace(os.Getenv("ROUTER_URL"))
	return &Client{
		routerURL: strings.TrimRight(routerURL, "/") + "/graphql",
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithURL is used by tests to point the client at a local server.
func NewClientWithURL(graphURL string) *Client {
	return &Client{
		routerURL: graphURL,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

type graphRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphError struct {
	Message string `json:"message"`
}

func (c *Client) post(ctx context.Context, token string, request graphRequest, data interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.routerURL, bytes.NewReader(body))
	if err != nil {
		return &ConnectionError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ConnectionError{Err: fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphError    `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &ResponseError{Messages: []string{err.Error()}}
	}
	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, graphErr := range envelope.Errors {
			messages = append(messages, graphErr.Message)
		}
		return &ResponseError{Messages: messages}
	}

	return json.Unmarshal(envelope.Data, data)
}

type SchemaElement struct {
	ID         string  `json:"id"`
	AssemblyId *string `json:"assemblyId"`
}

// GetSchemaElement fetches one foreign schema element and its assembly
// reference from the router.
func (c *Client) GetSchemaElement(ctx context.Context, token string, schemaCategoryIds []string, elementId string) (*SchemaElement, error) {

	request := graphRequest{
		Query: `query($schemaCategoryIds: [String!]!, $elementId: String!) {
			schemaElements(schemaCategoryIds: $schemaCategoryIds, elementId: $elementId) {
				id
				assemblyId
			}
		}`,
		Variables: map[string]interface{}{
			"schemaCategoryIds": schemaCategoryIds,
			"elementId":         elementId,
		},
	}

	var data struct {
		SchemaElements []SchemaElement `json:"schemaElements"`
	}
	if err := c.post(ctx, token, request, &data); err != nil {
		return nil, err
	}
	if len(data.SchemaElements) == 0 {
		return nil, nil
	}
	return &data.SchemaElements[0], nil
}

// ProjectExists asks the router whether the caller can see the project. The
// router applies its own access rules, so an empty result means either a
// missing project or denied access.
func (c *Client) ProjectExists(ctx context.Context, token string, projectId string) (bool, error) {

	request := graphRequest{
		Query: `query($id: String!) {
			projects(filters: {id: {equal: $id}}) {
				id
			}
		}`,
		Variables: map[string]interface{}{
			"id": projectId,
		},
	}

	var data struct {
		Projects []struct {
			ID string `json:"id"`
		} `json:"projects"`
	}
	if err := c.post(ctx, token, request, &data); err != nil {
		return false, err
	}
	return len(data.Projects) > 0, nil
}
