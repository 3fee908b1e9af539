package solana

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const tokenProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

// Client talks to the Helius enhanced-transactions API and JSON-RPC endpoint.
type Client struct {
	apiURL     string
	rpcURL     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiURL, rpcURL, apiKey string) *Client {
	return &Client{
		apiURL: strings.TrimSuffix(apiURL, "/"),
		rpcURL: strings.TrimSuffix(rpcURL, "/"),
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// AddressTransactions returns the most recent enhanced transactions involving
// the given address, newest first.
func (c *Client) AddressTransactions(ctx context.Context, address string, limit int) ([]EnhancedTransaction, error) {
	url := fmt.Sprintf("%s/v0/addresses/%s/transactions?api-key=%s&limit=%d", c.apiURL, address, c.apiKey, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("helius API error %d: %s", resp.StatusCode, string(data))
	}

	var txs []EnhancedTransaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	return txs, nil
}

// TokenBalance returns the wallet's balance of the given mint, adjusted for
// the token's decimal precision. A wallet holding no account for the mint
// has a zero balance; that is not an error.
func (c *Client) TokenBalance(ctx context.Context, wallet, mint string) (float64, error) {
	rpcReq := rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "getTokenAccountsByOwner",
		Params: []interface{}{
			wallet,
			map[string]string{"programId": tokenProgramID},
			map[string]string{"encoding": "jsonParsed"},
		},
	}

	body, err := json.Marshal(rpcReq)
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/?api-key=%s", c.rpcURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("helius RPC error %d: %s", resp.StatusCode, string(data))
	}

	var rpcResp tokenAccountsResponse
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		return 0, fmt.Errorf("unmarshal: %w", err)
	}
	if rpcResp.Error != nil {
		return 0, fmt.Errorf("helius RPC error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}
	if rpcResp.Result == nil {
		return 0, fmt.Errorf("helius RPC: missing result")
	}

	for _, acc := range rpcResp.Result.Value {
		info := acc.Account.Data.Parsed.Info
		if info.Mint != mint {
			continue
		}
		amount, err := strconv.ParseFloat(info.TokenAmount.Amount, 64)
		if err != nil {
			return 0, fmt.Errorf("parse token amount %q: %w", info.TokenAmount.Amount, err)
		}
		return amount / math.Pow10(info.TokenAmount.Decimals), nil
	}

	return 0, nil
}

// FlattenNativeTransfers collects the native transfers of all transactions,
// preserving order.
func FlattenNativeTransfers(txs []EnhancedTransaction) []NativeTransfer {
	var transfers []NativeTransfer
	for _, tx := range txs {
		transfers = append(transfers, tx.NativeTransfers...)
	}
	return transfers
}
