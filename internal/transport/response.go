package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/dashboard"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/mining"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

type stateResponse struct {
	Latest          *model.Block    `json:"latest"`
	LatestError     string          `json:"latest_error,omitempty"`
	LatestUpdatedAt *time.Time      `json:"latest_updated_at,omitempty"`
	Recent          []model.Block   `json:"recent"`
	RecentError     string          `json:"recent_error,omitempty"`
	Stats           *statsResponse  `json:"stats"`
	Search          searchResponse  `json:"search"`
	Mempool         mempoolResponse `json:"mempool"`
	Selection       []string        `json:"selection"`
	Mining          miningResponse  `json:"mining"`
}

type statsResponse struct {
	Difficulty       float64  `json:"difficulty"`
	AverageBlockTime *float64 `json:"average_block_time"`
	BlockTimeSamples int      `json:"block_time_samples"`
	AverageFee       float64  `json:"average_fee"`
	PendingCount     int      `json:"pending_count"`
}

type searchResponse struct {
	Query string       `json:"query,omitempty"`
	Block *model.Block `json:"block,omitempty"`
	Error string       `json:"error,omitempty"`
}

type mempoolResponse struct {
	State        string                `json:"state"`
	Error        string                `json:"error,omitempty"`
	Identifiers  int                   `json:"identifiers"`
	Cursor       int                   `json:"cursor"`
	PageSize     int                   `json:"page_size"`
	HasMore      bool                  `json:"has_more"`
	Transactions []transactionResponse `json:"transactions"`
}

type transactionResponse struct {
	TxID        string  `json:"txid"`
	Fee         int64   `json:"fee"`
	VSize       uint32  `json:"vsize"`
	FeeRate     float64 `json:"fee_rate"`
	TotalOutput int64   `json:"total_output"`
	Inputs      int     `json:"inputs"`
	Outputs     int     `json:"outputs"`
	Priority    string  `json:"priority"`
	Selected    bool    `json:"selected"`
}

type miningResponse struct {
	State      string           `json:"state"`
	Session    *sessionResponse `json:"session,omitempty"`
	Iterations uint64           `json:"iterations"`
	ElapsedMS  int64            `json:"elapsed_ms"`
	HashRate   float64          `json:"hash_rate"`
	Outcome    *outcomeResponse `json:"outcome,omitempty"`
}

type sessionResponse struct {
	ID            string    `json:"id"`
	SelectedIDs   []string  `json:"selected_ids"`
	StartedAt     time.Time `json:"started_at"`
	MerkleRoot    string    `json:"merkle_root"`
	PrevBlockHash string    `json:"prev_block_hash,omitempty"`
	Bits          uint32    `json:"bits,omitempty"`
	Target        string    `json:"target,omitempty"`
}

type outcomeResponse struct {
	Succeeded  bool    `json:"succeeded"`
	Iterations uint64  `json:"iterations"`
	ElapsedMS  int64   `json:"elapsed_ms"`
	HashRate   float64 `json:"hash_rate"`
	Nonce      *uint32 `json:"nonce,omitempty"`
	Hash       string  `json:"hash,omitempty"`
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func newStateResponse(view dashboard.View) stateResponse {
	chain := view.Chain
	resp := stateResponse{
		Latest:      chain.Latest,
		LatestError: errString(chain.LatestErr),
		Recent:      chain.Recent,
		RecentError: errString(chain.RecentErr),
		Search: searchResponse{
			Query: chain.SearchQuery,
			Block: chain.Searched,
			Error: errString(chain.SearchErr),
		},
		Selection: view.Selection,
		Mining:    newMiningResponse(view.Mining),
	}
	if resp.Recent == nil {
		resp.Recent = []model.Block{}
	}
	if resp.Selection == nil {
		resp.Selection = []string{}
	}
	if !chain.LatestUpdatedAt.IsZero() {
		at := chain.LatestUpdatedAt
		resp.LatestUpdatedAt = &at
	}
	if s := chain.Stats; s != nil {
		resp.Stats = &statsResponse{
			Difficulty:       s.Difficulty,
			BlockTimeSamples: s.BlockTimeSamples,
			AverageFee:       s.AverageFee,
			PendingCount:     s.PendingCount,
		}
		if s.BlockTimeSamples > 0 {
			avg := s.AverageBlockTime
			resp.Stats.AverageBlockTime = &avg
		}
	}

	selected := make(map[string]bool, len(view.Selection))
	for _, id := range view.Selection {
		selected[id] = true
	}
	pool := view.Mempool
	resp.Mempool = mempoolResponse{
		State:        string(pool.State),
		Error:        errString(pool.Err),
		Identifiers:  pool.Identifiers,
		Cursor:       pool.Cursor,
		PageSize:     pool.PageSize,
		HasMore:      len(pool.Materialized) < pool.Identifiers && (pool.Cursor+1)*pool.PageSize < pool.Identifiers,
		Transactions: make([]transactionResponse, 0, len(pool.Materialized)),
	}
	for _, tx := range pool.Materialized {
		resp.Mempool.Transactions = append(resp.Mempool.Transactions, transactionResponse{
			TxID:        tx.TxID,
			Fee:         int64(tx.Fee),
			VSize:       tx.VSize(),
			FeeRate:     tx.FeeRate(),
			TotalOutput: int64(tx.TotalOutput()),
			Inputs:      len(tx.Vin),
			Outputs:     len(tx.Vout),
			Priority:    string(tx.Priority()),
			Selected:    selected[tx.TxID],
		})
	}
	return resp
}

func newMiningResponse(st mining.Status) miningResponse {
	resp := miningResponse{
		State:      string(st.State),
		Iterations: st.Iterations,
		ElapsedMS:  st.Elapsed.Milliseconds(),
		HashRate:   st.HashRate,
	}
	if st.Session != nil {
		resp.Session = newSessionResponse(*st.Session)
	}
	if o := st.Outcome; o != nil {
		resp.Outcome = &outcomeResponse{
			Succeeded:  o.Succeeded,
			Iterations: o.Iterations,
			ElapsedMS:  o.Elapsed.Milliseconds(),
			HashRate:   o.HashRate,
			Nonce:      o.Nonce,
		}
		if o.Hash != nil {
			resp.Outcome.Hash = o.Hash.String()
		}
	}
	return resp
}

func newSessionResponse(s mining.Session) *sessionResponse {
	resp := &sessionResponse{
		ID:            s.ID,
		SelectedIDs:   s.SelectedIDs,
		StartedAt:     s.StartedAt,
		MerkleRoot:    s.MerkleRoot.String(),
		PrevBlockHash: s.PrevBlockHash,
		Bits:          s.Bits,
	}
	if s.Target != nil {
		resp.Target = s.Target.Text(16)
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
