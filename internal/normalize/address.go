package normalize

import "github.com/BraidFI-AI/sanctions-engine/internal/entity"

// NormalizeAddress canonicalizes every field of a postal address record
// for comparison: free-text lines are folded and whitespace-collapsed,
// country is resolved to its canonical display name where recognized.
func NormalizeAddress(a entity.Address) entity.NormalizedAddress {
	return entity.NormalizedAddress{
		Line1:   NormalizeAddressLine(a.Line1),
		Line2:   NormalizeAddressLine(a.Line2),
		City:    NormalizeAddressLine(a.City),
		State:   NormalizeAddressLine(a.State),
		Postal:  NormalizeIdentifier(a.Postal),
		Country: NormalizeCountry(a.Country),
	}
}

// NormalizeGovID canonicalizes a government identifier record.
func NormalizeGovID(g entity.GovernmentID) entity.NormalizedGovID {
	return entity.NormalizedGovID{
		Type:    NormalizeAddressLine(g.Type),
		Value:   NormalizeIdentifier(g.Value),
		Country: NormalizeCountry(g.Country),
	}
}

// NormalizeContact canonicalizes a contact record.
func NormalizeContact(c entity.ContactInfo) entity.NormalizedContact {
	return entity.NormalizedContact{
		Phone:   NormalizePhone(c.Phone),
		Email:   NormalizeAddressLine(c.Email),
		Fax:     NormalizePhone(c.Fax),
		Website: NormalizeAddressLine(c.Website),
	}
}

// NormalizeCrypto canonicalizes a crypto-address record.
func NormalizeCrypto(c entity.CryptoAddress) entity.NormalizedCrypto {
	return entity.NormalizedCrypto{
		Currency: NormalizeAddressLine(c.Currency),
		Address:  NormalizeCryptoAddress(c.Currency, c.Address),
	}
}
