// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package signature

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ethereum/go-ethereum/common"
)

// NewCachedDataSigner remembers the signatures of the last size digests signed
// by inner. A size of zero returns inner unchanged. inner must be deterministic.
func NewCachedDataSigner(inner DataSignerFunc, size int) (DataSignerFunc, error) {
	if size <= 0 {
		return inner, nil
	}
	cache, err := lru.New[common.Hash, []byte](size)
	if err != nil {
		return nil, err
	}
	return func(data []byte) ([]byte, error) {
		if len(data) != common.HashLength {
			return inner(data)
		}
		key := common.BytesToHash(data)
		if sig, ok := cache.Get(key); ok {
			return common.CopyBytes(sig), nil
		}
		sig, err := inner(data)
		if err != nil {
			return nil, err
		}
		cache.Add(key, common.CopyBytes(sig))
		return sig, nil
	}, nil
}
