// Package testcomet provides a stub CometBFT node which serves the JSON-RPC
// methods the tx context calls, so that clients can be tested offline.
package testcomet

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	abci "github.com/cometbft/cometbft/abci/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	rpctypes "github.com/cometbft/cometbft/rpc/jsonrpc/types"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/gogoproto/proto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// gRPC paths of the queries the tx context routes through abci_query.
const (
	AccountQueryPath  = "/cosmos.auth.v1beta1.Query/Account"
	SmartQueryPath    = "/cosmwasm.wasm.v1.Query/SmartContractState"
	SimulateQueryPath = "/cosmos.tx.v1beta1.Service/Simulate"
)

// HandlerFn answers one JSON-RPC method. A non-nil error is sent back as a
// JSON-RPC error.
type HandlerFn func(params json.RawMessage) (any, error)

// ABCIQueryFn answers the abci_query of one gRPC path given the proto encoded
// request.
type ABCIQueryFn func(data []byte) abci.ResponseQuery

// Server is a stub CometBFT node. Unknown methods get a "method not found"
// error and unknown query paths a failed abci response.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	handlers    map[string]HandlerFn
	abciQueries map[string]ABCIQueryFn
	calls       map[string]int
}

// NewServer starts a stub node which is closed with the test.
func NewServer(t *testing.T) *Server {
	t.Helper()

	srv := &Server{
		handlers:    make(map[string]HandlerFn),
		abciQueries: make(map[string]ABCIQueryFn),
		calls:       make(map[string]int),
	}
	srv.handlers["abci_query"] = srv.abciQuery

	router := chi.NewRouter()
	router.Post("/", srv.serveRPC)

	srv.Server = httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// Handle sets the handler of method.
func (srv *Server) Handle(method string, handler HandlerFn) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.handlers[method] = handler
}

// HandleABCIQuery sets the handler of the abci queries for path.
func (srv *Server) HandleABCIQuery(path string, query ABCIQueryFn) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.abciQueries[path] = query
}

// CallCount returns how many times method was called.
func (srv *Server) CallCount(method string) int {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	return srv.calls[method]
}

func (srv *Server) serveRPC(w http.ResponseWriter, r *http.Request) {
	var req rpctypes.RPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	srv.mu.Lock()
	srv.calls[req.Method]++
	handler, ok := srv.handlers[req.Method]
	srv.mu.Unlock()

	res := rpctypes.RPCMethodNotFoundError(req.ID)
	if ok {
		result, err := handler(req.Params)
		if err != nil {
			res = rpctypes.RPCInternalError(req.ID, err)
		} else {
			res = rpctypes.NewRPCSuccessResponse(req.ID, result)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

func (srv *Server) abciQuery(params json.RawMessage) (any, error) {
	var queryParams struct {
		Path string            `json:"path"`
		Data cmtbytes.HexBytes `json:"data"`
	}
	if err := json.Unmarshal(params, &queryParams); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	query, ok := srv.abciQueries[queryParams.Path]
	srv.mu.Unlock()
	if !ok {
		return &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{
			Code:      6,
			Codespace: "sdk",
			Log:       "unknown query path " + queryParams.Path,
		}}, nil
	}
	return &coretypes.ResultABCIQuery{Response: query(queryParams.Data)}, nil
}

// ResponseQuery returns a successful abci response holding the proto
// encoding of res.
func ResponseQuery(t *testing.T, cdc codec.BinaryCodec, res proto.Message) abci.ResponseQuery {
	t.Helper()

	value, err := cdc.Marshal(res)
	require.NoError(t, err)
	return abci.ResponseQuery{Value: value, Height: 42}
}
