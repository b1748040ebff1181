package calc

import (
	"encoding/json"
	"hash/fnv"
	"strconv"

	"plutus/internal/models"
)

// fallbackHash is used when serialization fails. It never matches a stored
// hash produced from real data, so the system degrades to always-miss
// instead of crashing.
const fallbackHash = "0"

// CalculationHash digests exactly the fields of an asset that influence its
// calculated income: the dividend schedule, quantity, current price, type,
// interest rate, rental info, and value. Changes to any other field (name,
// notes, timestamps) leave the hash untouched.
//
// The relevant fields are serialized through a map so encoding/json emits
// keys in sorted order; independently constructed assets with identical
// logical content therefore always hash the same. The digest is FNV-1a
// (32-bit, hex) — this is change detection, not security.
func CalculationHash(a *models.Asset) string {
	if a == nil {
		return fallbackHash
	}

	relevant := map[string]any{
		"type":          a.Type,
		"quantity":      finite(a.Quantity),
		"current_price": finite(a.CurrentPrice),
		"value":         finite(a.Value),
		"interest_rate": finite(a.InterestRate),
		"dividend_info": a.DividendInfo,
		"rental_info":   a.RentalInfo,
	}

	data, err := json.Marshal(relevant)
	if err != nil {
		return fallbackHash
	}

	h := fnv.New32a()
	_, _ = h.Write(data)
	return strconv.FormatUint(uint64(h.Sum32()), 16)
}

// CacheValid reports whether an asset's attached calculation is still
// current: a cache record exists and its hash matches the hash of the
// asset's income-relevant fields right now.
func CacheValid(a *models.Asset) bool {
	if a == nil || a.Cached == nil {
		return false
	}
	// The fallback hash never validates a cache: a record stored after a
	// serialization failure stays a permanent miss.
	h := CalculationHash(a)
	return h != fallbackHash && a.Cached.CalculationHash == h
}
