package analyses_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cvscore-backend/internal/bootstrap"
	"cvscore-backend/internal/shared/config"
)

const sampleCVText = `Thandi Nkosi
Email: thandi.nkosi@example.co.za | Phone: 082 555 1234
- Developed python reporting pipelines for a Johannesburg retailer.
- Managed a team of five analysts and improved delivery by 30%.
Education: BCom Information Systems, University of Cape Town.`

type analysisPayload struct {
	AnalysisID           string   `json:"analysisId"`
	DocumentID           string   `json:"documentId"`
	Score                int      `json:"score"`
	Rating               string   `json:"rating"`
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	Suggestions          []string `json:"suggestions"`
	FormatScore          int      `json:"formatScore"`
	ContentScore         int      `json:"contentScore"`
	RegionalContextScore int      `json:"regionalContextScore"`
	RegionalRelevance    string   `json:"regionalRelevance"`
	Skills               []string `json:"skills"`
	TaxonomyVersion      string   `json:"taxonomyVersion"`
	JobMatch             *struct {
		MatchScore int    `json:"matchScore"`
		Relevance  string `json:"relevance"`
	} `json:"jobMatch"`
}

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeTextEndpoint(t *testing.T) {
	router := buildTestRouter(t)

	resp := postJSON(t, router, "/api/v1/analyses", map[string]string{"text": sampleCVText})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload analysisPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.AnalysisID == "" {
		t.Fatalf("expected analysisId")
	}
	if payload.Score <= 0 || payload.Score > 100 {
		t.Fatalf("score out of range: %d", payload.Score)
	}
	if payload.Rating == "" {
		t.Fatalf("expected rating")
	}
	if payload.TaxonomyVersion == "" {
		t.Fatalf("expected taxonomyVersion")
	}
	if payload.JobMatch != nil {
		t.Fatalf("expected no jobMatch without a job description")
	}

	// The stored analysis is retrievable.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+payload.AnalysisID, nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	var fetched analysisPayload
	if err := json.NewDecoder(respGet.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode fetched analysis: %v", err)
	}
	if fetched.Score != payload.Score {
		t.Fatalf("fetched score %d != created score %d", fetched.Score, payload.Score)
	}
}

func TestAnalyzeTextWithJobDescription(t *testing.T) {
	router := buildTestRouter(t)

	resp := postJSON(t, router, "/api/v1/analyses", map[string]string{
		"text":           sampleCVText,
		"jobDescription": "We need python and sql skills for our Johannesburg office",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload analysisPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.JobMatch == nil {
		t.Fatalf("expected jobMatch with a job description")
	}
	if payload.JobMatch.Relevance == "" {
		t.Fatalf("expected jobMatch relevance")
	}
}

func TestAnalyzeTextRejectsBlankInput(t *testing.T) {
	router := buildTestRouter(t)

	resp := postJSON(t, router, "/api/v1/analyses", map[string]string{"text": "   \n\t "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}

	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %s", errResp.Error.Code)
	}
}

func TestAnalyzeDocumentEndpoint(t *testing.T) {
	router := buildTestRouter(t)

	docID := uploadDocument(t, router, "cv.txt", sampleCVText)

	resp := postJSON(t, router, "/api/v1/documents/"+docID+"/analyze", map[string]string{})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload analysisPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.DocumentID != docID {
		t.Fatalf("expected documentId %s, got %s", docID, payload.DocumentID)
	}
	if payload.Score <= 0 {
		t.Fatalf("expected positive score, got %d", payload.Score)
	}
}

func TestAnalyzeDocumentNotFound(t *testing.T) {
	router := buildTestRouter(t)

	resp := postJSON(t, router, "/api/v1/documents/3b2e9d4e-0000-0000-0000-000000000000/analyze", map[string]string{})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestGetAnalysisNotFound(t *testing.T) {
	router := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/missing-id", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestListAnalysesRequiresLogin(t *testing.T) {
	router := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for guest, got %d", resp.Code)
	}
}

func TestUsageLimitBlocksAnalysis(t *testing.T) {
	router := buildTestRouter(t)

	for i := 0; i < 10; i++ {
		resp := postJSON(t, router, "/api/v1/analyses", map[string]string{"text": sampleCVText})
		if resp.Code != http.StatusCreated {
			t.Fatalf("analysis %d: expected status 201, got %d: %s", i, resp.Code, resp.Body.String())
		}
	}

	resp := postJSON(t, router, "/api/v1/analyses", map[string]string{"text": sampleCVText})
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 past the plan limit, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "limit_reached") {
		t.Fatalf("expected limit_reached code, got %s", resp.Body.String())
	}
}

func uploadDocument(t *testing.T, router *gin.Engine, fileName, content string) string {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("upload: expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	return created.DocumentID
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}
