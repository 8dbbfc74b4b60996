// Package transport exposes the indexer queries over HTTP.
package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/indexer"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	statusResponse struct {
		SafeLastBlockSymbol int64  `json:"safeLastBlockSymbol"`
		SafeBestBlockHash   string `json:"safeBestBlockHash"`
		LastBlockSymbol     int64  `json:"lastBlockSymbol"`
		BestBlockHash       string `json:"bestBlockHash"`
		GenesisBlockHash    string `json:"genesisBlockHash"`
		Synced              bool   `json:"synced"`
	}
	healthResponse struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}
	balanceResponse struct {
		Address     string `json:"address"`
		Sats        uint64 `json:"sats"`
		BlockSymbol uint64 `json:"blockSymbol"`
		BlockHash   string `json:"blockHash"`
	}
	utxoResponse struct {
		TxSymbol       uint64  `json:"txSymbol"`
		Vout           uint64  `json:"vout"`
		Sats           uint64  `json:"sats"`
		CreatedOnBlock uint64  `json:"createdOnBlock"`
		SpentOnBlock   *uint64 `json:"spentOnBlock,omitempty"`
		SpentInTx      *uint64 `json:"spentInTx,omitempty"`
	}
	utxosResponse struct {
		Address string         `json:"address"`
		Utxos   []utxoResponse `json:"utxos"`
	}
	utxoDataResponse struct {
		TxID           string  `json:"txid"`
		Vout           uint32  `json:"vout"`
		Address        string  `json:"address,omitempty"`
		Sats           uint64  `json:"sats"`
		CreatedOnBlock uint64  `json:"createdOnBlock"`
		SpentOnBlock   *uint64 `json:"spentOnBlock,omitempty"`
		SpentInTx      *uint64 `json:"spentInTx,omitempty"`
	}
	blockResponse struct {
		Hash   string `json:"hash"`
		Symbol uint64 `json:"symbol"`
	}
	errorResponse struct {
		Error    string `json:"error"`
		SyncedTo *int64 `json:"syncedTo,omitempty"`
	}
)

// QueryHandler serves read-only indexer queries as JSON.
type QueryHandler struct {
	indexer Indexer
	sync    SyncState
	logger  *zap.Logger
}

// NewQueryHandler builds a QueryHandler. sync may be nil.
func NewQueryHandler(idx Indexer, sync SyncState, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		indexer: idx,
		sync:    sync,
		logger:  logger.Named("queryHandler"),
	}
}

// Routes registers every endpoint on a fresh mux.
func (h *QueryHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/health", h.health)
	mux.HandleFunc("GET /v1/status", h.status)
	mux.HandleFunc("GET /v1/accounts/{address}/balance", h.balance)
	mux.HandleFunc("GET /v1/accounts/{address}/utxos", h.utxos)
	mux.HandleFunc("GET /v1/utxos/{txid}/{vout}", h.utxo)
	mux.HandleFunc("GET /v1/blocks/{hash}/symbol", h.blockSymbol)
	mux.HandleFunc("GET /v1/heights/{height}", h.blockAtHeight)
	return mux
}

func (h *QueryHandler) health(w http.ResponseWriter, _ *http.Request) {
	if err := h.indexer.Err(); err != nil {
		h.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "halted", Error: err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

func (h *QueryHandler) status(w http.ResponseWriter, _ *http.Request) {
	st := h.indexer.Status()
	resp := statusResponse{
		SafeLastBlockSymbol: st.SafeLastBlockSymbol,
		SafeBestBlockHash:   st.SafeBestBlockHash,
		LastBlockSymbol:     st.LastBlockSymbol,
		BestBlockHash:       st.BestBlockHash,
		GenesisBlockHash:    st.GenesisBlockHash,
	}
	if h.sync != nil {
		resp.Synced = h.sync.Synced()
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *QueryHandler) balance(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	at, err := blockRef(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	balance, err := h.indexer.AccountBalance(r.Context(), address, at)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResponse{
		Address:     address,
		Sats:        balance.Sats,
		BlockSymbol: balance.BlockSymbol,
		BlockHash:   balance.BlockHash,
	})
}

func (h *QueryHandler) utxos(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	onlyUnspent := false
	if raw := r.URL.Query().Get("unspent"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(w, fmt.Errorf("%w: unspent %q", indexer.ErrInvalidArgument, raw))
			return
		}
		onlyUnspent = v
	}

	utxos, err := h.indexer.AccountUtxos(r.Context(), address, onlyUnspent)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := utxosResponse{Address: address, Utxos: make([]utxoResponse, 0, len(utxos))}
	for _, u := range utxos {
		resp.Utxos = append(resp.Utxos, utxoResponse{
			TxSymbol:       u.TxSymbol,
			Vout:           u.Vout,
			Sats:           u.Sats,
			CreatedOnBlock: u.CreatedOnBlock,
			SpentOnBlock:   u.SpentOnBlock,
			SpentInTx:      u.SpentInTx,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *QueryHandler) utxo(w http.ResponseWriter, r *http.Request) {
	txid := r.PathValue("txid")
	vout, err := strconv.ParseUint(r.PathValue("vout"), 10, 32)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: vout %q", indexer.ErrInvalidArgument, r.PathValue("vout")))
		return
	}
	data, err := h.indexer.UtxoData(r.Context(), txid, uint32(vout))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, utxoDataResponse{
		TxID:           txid,
		Vout:           uint32(vout),
		Address:        data.Address,
		Sats:           data.Sats,
		CreatedOnBlock: data.CreatedOnBlock,
		SpentOnBlock:   data.SpentOnBlock,
		SpentInTx:      data.SpentInTx,
	})
}

func (h *QueryHandler) blockSymbol(w http.ResponseWriter, r *http.Request) {
	hash := r.PathValue("hash")
	symbol, err := h.indexer.BlockSymbol(r.Context(), hash)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, blockResponse{Hash: hash, Symbol: symbol})
}

func (h *QueryHandler) blockAtHeight(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseUint(r.PathValue("height"), 10, 64)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: height %q", indexer.ErrInvalidArgument, r.PathValue("height")))
		return
	}
	hash, err := h.indexer.BlockHash(r.Context(), height)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, blockResponse{Hash: hash, Symbol: height})
}

// blockRef reads the optional height or hash query parameter.
func blockRef(r *http.Request) (*indexer.BlockRef, error) {
	q := r.URL.Query()
	rawHeight, hash := q.Get("height"), q.Get("hash")
	switch {
	case rawHeight != "" && hash != "":
		return nil, fmt.Errorf("%w: height and hash are exclusive", indexer.ErrInvalidArgument)
	case rawHeight != "":
		height, err := strconv.ParseUint(rawHeight, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: height %q", indexer.ErrInvalidArgument, rawHeight)
		}
		return indexer.AtHeight(height), nil
	case hash != "":
		return indexer.AtHash(hash), nil
	default:
		return nil, nil
	}
}

func (h *QueryHandler) writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, indexer.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, indexer.ErrInvalidArgument):
		code = http.StatusBadRequest
	case errors.Is(err, indexer.ErrStillSyncing):
		code = http.StatusServiceUnavailable
		synced := h.indexer.Status().SafeLastBlockSymbol
		resp.SyncedTo = &synced
	default:
		h.logger.Error("query failed", zap.Error(err))
	}
	h.writeJSON(w, code, resp)
}

func (h *QueryHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}
