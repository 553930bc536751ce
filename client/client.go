// Package client talks to a Lumina node's REST API: block lookups for
// transaction defaults, raw-transaction submission, and receipt polling.
// It also hosts the high-level transaction facade built on those calls.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ledgerwatch/log/v3"
	"github.com/valyala/fasthttp"

	"github.com/lumina-chain/lumina-sdk/common"
	"github.com/lumina-chain/lumina-sdk/tx"
)

// ErrNotFound is returned when the node answers 404 or an explicit null,
// e.g. for the receipt of a transaction that is not processed yet.
var ErrNotFound = errors.New("not found")

const defaultTimeout = 20 * time.Second

// Client is a thin REST client for one node. It is safe for concurrent
// use.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	timeout time.Duration
	logger  log.Logger

	chainTagMu     sync.Mutex
	chainTag       byte
	chainTagCached bool
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout bounds every request round trip.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger routes the client's request logging.
func WithLogger(logger log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the node at baseURL, e.g.
// "http://localhost:8669".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fasthttp.Client{},
		timeout: defaultTimeout,
		logger:  log.New("module", "client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Block fetches a block by revision: a number, a 0x-prefixed id, "best"
// or "finalized".
func (c *Client) Block(revision string) (*Block, error) {
	var b *Block
	if err := c.get("/blocks/"+revision, &b); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("block %s: %w", revision, ErrNotFound)
	}
	return b, nil
}

// BestBlock fetches the head of the trunk chain.
func (c *Client) BestBlock() (*Block, error) {
	return c.Block("best")
}

// GenesisBlock fetches block 0.
func (c *Client) GenesisBlock() (*Block, error) {
	return c.Block("0")
}

// ChainTag returns the network's replay-protection tag, the last byte of
// the genesis block id. Only a successful lookup is cached, so callers
// may simply retry after a network failure.
func (c *Client) ChainTag() (byte, error) {
	c.chainTagMu.Lock()
	defer c.chainTagMu.Unlock()
	if c.chainTagCached {
		return c.chainTag, nil
	}
	genesis, err := c.GenesisBlock()
	if err != nil {
		return 0, fmt.Errorf("chain tag: %w", err)
	}
	c.chainTag = genesis.ID[31]
	c.chainTagCached = true
	return c.chainTag, nil
}

// SendTransaction submits a signed transaction and returns the id the
// node computed for it.
func (c *Client) SendTransaction(t *tx.Transaction) (*SendResult, error) {
	raw, err := t.Encode(true)
	if err != nil {
		return nil, err
	}
	return c.SendRawTransaction(raw)
}

// SendRawTransaction submits pre-encoded signed transaction bytes.
func (c *Client) SendRawTransaction(raw []byte) (*SendResult, error) {
	var res SendResult
	if err := c.post("/transactions", &sendTxRequest{Raw: raw}, &res); err != nil {
		return nil, err
	}
	c.logger.Debug("transaction submitted", "id", res.ID, "size", len(raw))
	return &res, nil
}

// TransactionReceipt fetches the receipt of a processed transaction, or
// ErrNotFound while it is still pending.
func (c *Client) TransactionReceipt(id common.Bytes32) (*Receipt, error) {
	var r *Receipt
	if err := c.get("/transactions/"+id.Hex()+"/receipt", &r); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("receipt %s: %w", id, ErrNotFound)
	}
	return r, nil
}

// WaitForReceipt polls for a receipt until it appears or the deadline
// passes. The poll interval follows the chain's block cadence.
func (c *Client) WaitForReceipt(id common.Bytes32, timeout time.Duration) (*Receipt, error) {
	const interval = 3 * time.Second
	deadline := time.Now().Add(timeout)
	for {
		r, err := c.TransactionReceipt(id)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("receipt %s: timed out after %s", id, timeout)
		}
		time.Sleep(interval)
	}
}

func (c *Client) get(path string, target interface{}) error {
	return c.do(fasthttp.MethodGet, path, nil, target)
}

func (c *Client) post(path string, body interface{}, target interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(fasthttp.MethodPost, path, encoded, target)
}

func (c *Client) do(method, path string, body []byte, target interface{}) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		c.logger.Warn("request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	status := resp.StatusCode()
	if status == fasthttp.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if status != fasthttp.StatusOK {
		msg := strings.TrimSpace(string(resp.Body()))
		return fmt.Errorf("%s %s: status %d: %s", method, path, status, msg)
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
