// Package storejson decodes the raw "store" JSON document embedded in a pool
// page into a domain.Snapshot. The document shape is owned by the remote
// source; decoding fails closed when any field the reconciliation depends on
// is missing or mistyped.
package storejson

import (
	"encoding/json"
	"fmt"
	"time"

	"poolmirror/internal/domain"
)

type storeRoot struct {
	Campaign     map[string]campaignEntry `json:"campaign"`
	Contributors *contributorsSection     `json:"contributors"`
	Txns         *txnsSection             `json:"txns"`
}

type campaignEntry struct {
	Title  string     `json:"title"`
	Owner  *ownerInfo `json:"owner"`
	Pledge *float64   `json:"pledge"`
}

type ownerInfo struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

type contributorsSection struct {
	Map map[string]nameEntry `json:"map"`
}

type nameEntry struct {
	FullName string `json:"full_name"`
}

type txnsSection struct {
	List []txnEntry `json:"list"`
}

type txnEntry struct {
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	ContributorID string    `json:"contributor_id"`
	ID            string    `json:"id"`
}

// Decode parses raw store JSON and extracts the campaign entry for poolID.
// All errors wrap domain.ErrDecode.
func Decode(raw []byte, poolID string) (domain.Snapshot, error) {
	var root storeRoot
	if err := json.Unmarshal(raw, &root); err != nil {
		return domain.Snapshot{}, fmt.Errorf("storejson: parse store document: %v: %w", err, domain.ErrDecode)
	}

	entry, ok := root.Campaign[poolID]
	if !ok {
		return domain.Snapshot{}, fmt.Errorf("storejson: campaign %q not in store document: %w", poolID, domain.ErrDecode)
	}
	if entry.Owner == nil || entry.Owner.ID == "" {
		return domain.Snapshot{}, fmt.Errorf("storejson: campaign %q has no owner id: %w", poolID, domain.ErrDecode)
	}
	if entry.Pledge == nil {
		return domain.Snapshot{}, fmt.Errorf("storejson: campaign %q has no pledge amount: %w", poolID, domain.ErrDecode)
	}
	if root.Contributors == nil || root.Contributors.Map == nil {
		return domain.Snapshot{}, fmt.Errorf("storejson: contributor map missing: %w", domain.ErrDecode)
	}
	if root.Txns == nil || root.Txns.List == nil {
		return domain.Snapshot{}, fmt.Errorf("storejson: transaction list missing: %w", domain.ErrDecode)
	}

	snap := domain.Snapshot{
		PoolID:       poolID,
		Title:        entry.Title,
		OwnerID:      entry.Owner.ID,
		OwnerName:    entry.Owner.FullName,
		OwnerPledge:  *entry.Pledge,
		Transactions: make([]domain.Transaction, 0, len(root.Txns.List)),
		Contributors: make(map[string]string, len(root.Contributors.Map)),
	}
	for _, t := range root.Txns.List {
		snap.Transactions = append(snap.Transactions, domain.Transaction{
			Date:          t.Date.UTC(),
			Amount:        t.Amount,
			ContributorID: t.ContributorID,
		})
	}
	for id, name := range root.Contributors.Map {
		snap.Contributors[id] = name.FullName
	}
	return snap, nil
}
