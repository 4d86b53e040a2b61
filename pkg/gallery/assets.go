package gallery

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
)

// Asset is one resolved image reference. Exactly one of Data or URL is
// set when resolution succeeded; both empty means the caller should
// show a placeholder.
type Asset struct {
	Ref  string
	Data []byte // in-memory blob from the authenticated download
	URL  string // signed-URL fallback
}

// Empty reports whether resolution produced nothing displayable.
func (a Asset) Empty() bool {
	return len(a.Data) == 0 && a.URL == ""
}

// Location is a displayable reference: blob-backed assets get a blob:
// pseudo-URL valid until the owning batch is released, signed assets
// get their URL, unresolved assets get nothing.
func (a Asset) Location() string {
	if len(a.Data) > 0 {
		return "blob:" + a.Ref
	}
	return a.URL
}

// ResolvedBatch owns the blobs of one resolution pass. A batch is
// released exactly once: by an explicit Release call or implicitly when
// the client installs the next batch.
type ResolvedBatch struct {
	mu       sync.Mutex
	assets   map[string]Asset
	released bool
}

// Asset returns the resolved asset for ref. After Release every lookup
// returns an empty asset.
func (b *ResolvedBatch) Asset(ref string) Asset {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return Asset{Ref: ref}
	}
	return b.assets[ref]
}

// Release drops the batch's blobs. Safe to call more than once; only
// the first call does anything.
func (b *ResolvedBatch) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return
	}
	b.released = true
	b.assets = nil
}

// Released reports whether the batch has been released.
func (b *ResolvedBatch) Released() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released
}

// signedURLResponse accepts both spellings of the signed-url payload.
type signedURLResponse struct {
	SignedURL string `json:"signed_url"`
	Legacy    string `json:"signedURL"`
}

func (r signedURLResponse) value() string {
	if r.SignedURL != "" {
		return r.SignedURL
	}
	return r.Legacy
}

// ResolveAssets resolves each storage path to a displayable asset and
// installs the result as the client's current batch, releasing the
// previous one. Per-ref failures are logged and yield empty assets;
// the pass itself never fails.
func (c *Client) ResolveAssets(ctx context.Context, refs []string) *ResolvedBatch {
	batch := &ResolvedBatch{assets: make(map[string]Asset, len(refs))}

	for _, ref := range refs {
		if ref == "" {
			continue
		}
		batch.assets[ref] = c.resolveAsset(ctx, ref)
	}

	c.mu.Lock()
	prev := c.batch
	c.batch = batch
	c.mu.Unlock()

	if prev != nil {
		prev.Release()
	}
	return batch
}

// resolveAsset tries the authenticated download first, then the
// signed-url endpoint.
func (c *Client) resolveAsset(ctx context.Context, ref string) Asset {
	if data, err := c.downloadImage(ctx, ref); err == nil {
		return Asset{Ref: ref, Data: data}
	} else {
		c.log.Debug().Err(err).Str("ref", ref).Msg("Authenticated download failed, trying signed URL")
	}

	var signed signedURLResponse
	query := url.Values{"path": {ref}}
	if err := c.call(ctx, "GET", "/signed-url", query, nil, &signed); err != nil {
		c.log.Warn().Err(err).Str("ref", ref).Msg("Image resolution failed")
		return Asset{Ref: ref}
	}
	if signed.value() == "" {
		c.log.Warn().Str("ref", ref).Msg("Signed-url response carried no URL")
		return Asset{Ref: ref}
	}

	return Asset{Ref: ref, URL: signed.value()}
}

func (c *Client) downloadImage(ctx context.Context, ref string) ([]byte, error) {
	query := url.Values{"path": {ref}}
	req, err := c.newRequest(ctx, "GET", "/artworks/image", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &apiError{Code: "DOWNLOAD_FAILED", Message: resp.Status}
	}
	return io.ReadAll(resp.Body)
}
