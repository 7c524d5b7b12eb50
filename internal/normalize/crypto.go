package normalize

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// NormalizeCryptoAddress canonicalizes an on-chain address for
// comparison. Bitcoin mainnet addresses (base58check P2PKH/P2SH or
// bech32 segwit) are decoded and re-encoded through btcutil so that two
// textual spellings of the same address always fold to the same string.
// Decode failure is not an error condition — it means "not a recognized
// Bitcoin address", not "invalid entity" — and the address falls back to
// trim+case-fold so it still participates in exact-string comparison.
func NormalizeCryptoAddress(currency, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(currency, "BTC") || currency == "" {
		if addr, err := btcutil.DecodeAddress(trimmed, &chaincfg.MainNetParams); err == nil {
			return addr.EncodeAddress()
		}
	}
	return strings.ToLower(trimmed)
}
