package api

import (
	"encoding/json"
	"net/http"

	"github.com/nguyentantai21042004/script-extractor/internal/embedding"
	"github.com/nguyentantai21042004/script-extractor/internal/processor"
	"github.com/nguyentantai21042004/script-extractor/internal/storage"
)

const defaultSearchLimit = 5

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"embedding": r.provider.Name(),
		"semantic":  embedding.IsAvailable(r.provider),
		"storage":   r.store != nil,
	})
}

func decodeExtract(req *http.Request) (*ExtractRequest, error) {
	var body ExtractRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return nil, ErrBadRequest()
	}
	if errors := body.Validate(); len(errors) > 0 {
		return nil, NewValidationError(errors)
	}
	return &body, nil
}

func (r *Router) extract(w http.ResponseWriter, req *http.Request) {
	body, err := decodeExtract(req)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := r.processor.Process(req.Context(), body.toProcessor())
	if err != nil {
		writeError(w, pipelineError(err))
		return
	}

	writeJSON(w, http.StatusOK, newExtractResponse(result))
}

// extractStream writes one NDJSON line per pipeline state. Failures after
// the stream starts arrive as a "failed" line.
func (r *Router) extractStream(w http.ResponseWriter, req *http.Request) {
	body, err := decodeExtract(req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)

	r.processor.ProcessProgressive(req.Context(), body.toProcessor(), func(u processor.Update) {
		if err := enc.Encode(newStreamEvent(u)); err != nil {
			r.logger.Warn(req.Context(), "Failed to write stream event: %v", err)
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	})
}

func (r *Router) search(w http.ResponseWriter, req *http.Request) {
	var body SearchRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, ErrBadRequest())
		return
	}
	if errors := body.Validate(); len(errors) > 0 {
		writeError(w, NewValidationError(errors))
		return
	}
	if body.Limit == 0 {
		body.Limit = defaultSearchLimit
	}

	if r.store == nil {
		writeError(w, ErrUnavailable("transcript storage is not configured"))
		return
	}
	if !embedding.IsAvailable(r.provider) {
		writeError(w, ErrUnavailable("embedding provider is not available"))
		return
	}

	vectors, err := r.provider.Embed(req.Context(), []string{body.Query})
	if err != nil || len(vectors) != 1 {
		r.logger.Error(req.Context(), "Failed to embed search query: %v", err)
		writeError(w, ErrUnavailable("failed to embed query"))
		return
	}

	hits, err := r.store.Search(req.Context(), vectors[0], body.Limit)
	if err != nil {
		r.logger.Error(req.Context(), "Search failed: %v", err)
		writeError(w, NewError(http.StatusInternalServerError, "search failed"))
		return
	}
	if hits == nil {
		hits = []storage.SearchHit{}
	}

	writeJSON(w, http.StatusOK, SearchResponse{Results: hits})
}
