// Package token holds the static directory of supported tokens and resolves
// free-form identifiers (name, ticker or mint address) to directory records.
package token

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed tokens.json
var bundledTokens []byte

// addressLenThreshold separates human-chosen names/tickers from base58 mint
// addresses, which are always at least 32 characters.
const addressLenThreshold = 32

// Record describes one supported token. CanonicalID is the market-data
// provider's own identifier, distinct from the on-chain mint address.
type Record struct {
	CanonicalID string `json:"id"`
	Ticker      string `json:"ticker"`
	Name        string `json:"name"`
	Address     string `json:"address"`
}

// Directory is read-only after construction and safe for concurrent use.
type Directory struct {
	records  []Record
	byName   map[string]*Record
	byTicker map[string]*Record
	byAddr   map[string]*Record
}

// Load builds the directory from the bundled dataset. A changed dataset
// requires a rebuild.
func Load() (*Directory, error) {
	return parse(bundledTokens)
}

func parse(raw []byte) (*Directory, error) {
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse token dataset: %w", err)
	}

	d := &Directory{
		records:  records,
		byName:   make(map[string]*Record, len(records)),
		byTicker: make(map[string]*Record, len(records)),
		byAddr:   make(map[string]*Record, len(records)),
	}
	for i := range d.records {
		rec := &d.records[i]
		name := strings.ToLower(strings.TrimSpace(rec.Name))
		ticker := strings.ToLower(strings.TrimSpace(rec.Ticker))
		addr := strings.TrimSpace(rec.Address)
		if name == "" || ticker == "" || addr == "" {
			return nil, fmt.Errorf("token dataset entry %d is incomplete", i)
		}
		if _, dup := d.byName[name]; dup {
			return nil, fmt.Errorf("duplicate token name %q", name)
		}
		if _, dup := d.byTicker[ticker]; dup {
			return nil, fmt.Errorf("duplicate token ticker %q", ticker)
		}
		if _, dup := d.byAddr[addr]; dup {
			return nil, fmt.Errorf("duplicate token address %q", addr)
		}
		d.byName[name] = rec
		d.byTicker[ticker] = rec
		d.byAddr[addr] = rec
	}
	return d, nil
}

// Resolve maps an identifier to a directory record. Identifiers shorter than
// the address threshold are tried case-insensitively against the name index,
// then the ticker index; the address index is consulted last with an exact
// match. The boolean reports whether a record was found.
func (d *Directory) Resolve(identifier string) (Record, bool) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return Record{}, false
	}
	if len(id) < addressLenThreshold {
		lowered := strings.ToLower(id)
		if rec, ok := d.byName[lowered]; ok {
			return *rec, true
		}
		if rec, ok := d.byTicker[lowered]; ok {
			return *rec, true
		}
	}
	if rec, ok := d.byAddr[id]; ok {
		return *rec, true
	}
	return Record{}, false
}

// SupportedAddress resolves an identifier and returns just the mint address.
// An identifier that already is a supported address comes back unchanged.
func (d *Directory) SupportedAddress(identifier string) (string, bool) {
	rec, ok := d.Resolve(identifier)
	if !ok {
		return "", false
	}
	return rec.Address, true
}

// List returns every record in dataset order.
func (d *Directory) List() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Len reports the number of supported tokens.
func (d *Directory) Len() int { return len(d.records) }
