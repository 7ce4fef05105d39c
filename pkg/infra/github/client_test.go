package github_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	githubinfra "github.com/m-mizutani/prdesc/pkg/infra/github"
)

func TestClient_ListOpenPullRequests(t *testing.T) {
	var gotQuery map[string]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.Method, http.MethodGet)
		gt.Equal(t, r.URL.Path, "/repos/owner/repo/pulls")

		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"state": r.URL.Query().Get("state"),
			"head":  r.URL.Query().Get("head"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"number": 42, "html_url": "https://github.com/owner/repo/pull/42"}, {"number": 7}]`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient("test-token", githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	prs, err := client.ListOpenPullRequests(context.Background(), "owner", "repo", "owner:feature/x")
	gt.NoError(t, err)

	gt.Equal(t, len(prs), 2)
	gt.Equal(t, prs[0].GetNumber(), 42)
	gt.Equal(t, prs[0].GetHTMLURL(), "https://github.com/owner/repo/pull/42")
	gt.Equal(t, prs[1].GetNumber(), 7)

	gt.Equal(t, gotQuery["state"], "open")
	gt.Equal(t, gotQuery["head"], "owner:feature/x")
	gt.Equal(t, gotAuth, "Bearer test-token")
}

func TestClient_ListOpenPullRequests_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient("test-token", githubinfra.WithBaseURL(server.URL+"/"))
	gt.NoError(t, err)

	prs, err := client.ListOpenPullRequests(context.Background(), "owner", "repo", "owner:feature/x")
	gt.NoError(t, err)
	gt.Equal(t, len(prs), 0)
}

func TestClient_ListOpenPullRequests_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Bad credentials"}`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient("bad-token", githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	prs, err := client.ListOpenPullRequests(context.Background(), "owner", "repo", "owner:feature/x")
	gt.Error(t, err)
	gt.Equal(t, len(prs), 0)
	gt.String(t, err.Error()).Contains("failed to list pull requests")
}

func TestClient_UpdatePullRequestBody(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.Method, http.MethodPatch)
		gt.Equal(t, r.URL.Path, "/repos/owner/repo/pulls/42")

		raw, err := io.ReadAll(r.Body)
		gt.NoError(t, err)
		gt.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"number": 42, "body": "## Summary\nAdds foo.", "html_url": "https://github.com/owner/repo/pull/42"}`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient("test-token", githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	pr, err := client.UpdatePullRequestBody(context.Background(), "owner", "repo", 42, "## Summary\nAdds foo.")
	gt.NoError(t, err)
	gt.Equal(t, pr.GetNumber(), 42)
	gt.Equal(t, pr.GetBody(), "## Summary\nAdds foo.")

	// Only the body is sent so title, state and base stay as they are
	gt.Equal(t, len(gotBody), 1)
	gt.Equal(t, gotBody["body"], any("## Summary\nAdds foo."))
}

func TestClient_UpdatePullRequestBody_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient("test-token", githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	pr, err := client.UpdatePullRequestBody(context.Background(), "owner", "repo", 99, "body")
	gt.Error(t, err)
	gt.Value(t, pr).Nil()
	gt.String(t, err.Error()).Contains("failed to update pull request")
}

func TestClient_WithRealAPI(t *testing.T) {
	token := os.Getenv("TEST_GITHUB_TOKEN")
	owner := os.Getenv("TEST_GITHUB_OWNER")
	repo := os.Getenv("TEST_GITHUB_REPO")

	if token == "" || owner == "" || repo == "" {
		t.Skip("TEST_GITHUB_TOKEN, TEST_GITHUB_OWNER or TEST_GITHUB_REPO not set")
	}

	client, err := githubinfra.NewClient(token)
	gt.NoError(t, err)

	// Listing is read-only, so it is safe against a real repository
	prs, err := client.ListOpenPullRequests(context.Background(), owner, repo, owner+":main")
	gt.NoError(t, err)
	t.Logf("found %d open pull requests with head %s:main", len(prs), owner)
}
