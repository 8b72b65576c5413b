package solcache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/katalvlaran/lvtsp/pointset"
	"github.com/katalvlaran/lvtsp/tsp"
)

// SetHash returns a stable hash of a point set. Points are hashed in ID order
// so the input order does not matter. Coordinates enter as their exact IEEE-754
// bits: sets that differ in any coordinate never share a hash.
func SetHash(set pointset.Set) (string, error) {
	norm, err := pointset.Normalize(set)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	var buf [20]byte
	for _, p := range norm.Points {
		binary.LittleEndian.PutUint32(buf[0:4], p.ID)
		binary.LittleEndian.PutUint64(buf[4:12], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(buf[12:20], math.Float64bits(p.Y))
		h.Write(buf[:])
	}
	sum := h.Sum(nil)

	return hex.EncodeToString(sum[:16]), nil
}

// Key builds the cache key for an exact solution of set.
func Key(set pointset.Set, strategy tsp.Strategy) (string, error) {
	hash, err := SetHash(set)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("tsp:exact:%s:%s", strategy, hash), nil
}
