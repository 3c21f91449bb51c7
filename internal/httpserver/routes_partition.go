// internal/httpserver/routes_partition.go
//
// POST /partition: run the engine once, without a session.
// Candidates default to the full solution list. Supplied candidates are
// lower-cased and de-duplicated, keeping the first occurrence. The response
// lists every bucket in first-production order plus the one the engine keeps.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/absurdle/internal/absurdle"
	"github.com/robalobadob/absurdle/internal/words"
)

type partitionReq struct {
	Guess      string   `json:"guess" validate:"omitempty,alpha,max=32"`
	Candidates []string `json:"candidates" validate:"omitempty,max=50000,dive,required,alpha"`
}

type bucketRes struct {
	Pattern absurdle.Pattern `json:"pattern"`
	Size    int              `json:"size"`
}

type partitionRes struct {
	Guess     string           `json:"guess"`
	Pattern   absurdle.Pattern `json:"pattern"`
	Survivors []string         `json:"survivors"`
	Buckets   []bucketRes      `json:"buckets"`
}

func (s *Server) mountPartition(r chi.Router) {
	r.Post("/partition", s.handlePartition)
}

func (s *Server) handlePartition(w http.ResponseWriter, r *http.Request) {
	var req partitionReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	candidates := req.Candidates
	if candidates == nil {
		candidates = s.vocab.Solutions()
	} else {
		candidates = words.Normalize(candidates)
	}

	start := time.Now()
	table, err := absurdle.Analyze(req.Guess, candidates)
	if err != nil {
		writeError(w, err)
		return
	}
	best := table.Largest()
	partitionTotal.WithLabelValues("api").Inc()
	partitionDuration.WithLabelValues("api").Observe(time.Since(start).Seconds())
	keptBucketSize.Observe(float64(best.Size()))

	sizes := table.Sizes()
	buckets := make([]bucketRes, 0, table.Len())
	for _, p := range table.Patterns() {
		buckets = append(buckets, bucketRes{Pattern: p, Size: sizes[p]})
	}

	writeJSON(w, http.StatusOK, partitionRes{
		Guess:     table.Guess(),
		Pattern:   best.Pattern,
		Survivors: best.Members,
		Buckets:   buckets,
	})
}
