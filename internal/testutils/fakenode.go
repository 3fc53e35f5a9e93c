package testutils

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/websocket"
)

// RPCError is a JSON-RPC error object returned by a FakeNode handler.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HandlerFunc answers a single JSON-RPC method. Returning a non nil RPCError produces an error
// response instead of a result.
type HandlerFunc func(params json.RawMessage) (any, *RPCError)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// FakeNode is a minimal Ethereum JSON-RPC node served over both HTTP and websocket. It answers
// eth_chainId out of the box, every other method must be registered with Handle.
//
// When the test is done, the server is closed automatically.
type FakeNode struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]HandlerFunc
	calls    map[string]int
	upgrader websocket.Upgrader
}

// NewFakeNode starts a FakeNode reporting chainID.
func NewFakeNode(t *testing.T, chainID *big.Int) *FakeNode {
	t.Helper()

	n := &FakeNode{
		handlers: map[string]HandlerFunc{},
		calls:    map[string]int{},
	}
	n.Handle("eth_chainId", func(json.RawMessage) (any, *RPCError) {
		return hexutil.EncodeBig(chainID), nil
	})

	n.Server = httptest.NewServer(http.HandlerFunc(n.serveHTTP))
	t.Cleanup(n.Close)

	return n
}

// WSURL returns the websocket URL of the node.
func (n *FakeNode) WSURL() string {
	return "ws" + strings.TrimPrefix(n.URL, "http")
}

// Handle registers fn as the answer to method, replacing any previous handler.
func (n *FakeNode) Handle(method string, fn HandlerFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.handlers[method] = fn
}

// Calls returns how many times method was requested.
func (n *FakeNode) Calls(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.calls[method]
}

func (n *FakeNode) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if websocket.IsWebSocketUpgrade(r) {
		n.serveWS(w, r)
		return
	}

	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(n.answer(req))
}

func (n *FakeNode) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := n.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var req rpcRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		if err := conn.WriteJSON(n.answer(req)); err != nil {
			return
		}
	}
}

func (n *FakeNode) answer(req rpcRequest) rpcResponse {
	n.mu.Lock()
	n.calls[req.Method]++
	fn, ok := n.handlers[req.Method]
	n.mu.Unlock()

	resp := rpcResponse{JSONRPC: "2.0", ID: req.ID}
	if !ok {
		resp.Error = &RPCError{Code: -32601, Message: "the method " + req.Method + " does not exist/is not available"}
		return resp
	}

	result, rpcErr := fn(req.Params)
	if rpcErr != nil {
		resp.Error = rpcErr
		return resp
	}
	resp.Result = result

	return resp
}
