package cartolib

func conflictingStrings(one, another string) bool {
	return one != "" && another != "" && one != another
}

func conflictingCoordinates(one, another *Coordinate) bool {
	return one != nil && another != nil && *one != *another
}

func mergeString(one, another string) string {
	if one != "" {
		return one
	}

	return another
}

func mergeCoordinate(one, another *Coordinate) *Coordinate {
	if one != nil {
		return copyCoordinate(one)
	}

	return copyCoordinate(another)
}

// Merge combines 2 records which describe the same prefix.
//
// If records are equal, existing one is returned. If they set the same
// field to different values, existing one is returned together with
// MergeConflictError. Otherwise the result is a union of fields.
func Merge(existing, incoming Record) (Record, error) {
	if existing.Equal(incoming) {
		return existing, nil
	}

	if conflictingStrings(existing.CountryCode, incoming.CountryCode) ||
		conflictingStrings(existing.Subdivision, incoming.Subdivision) ||
		conflictingStrings(existing.City, incoming.City) ||
		conflictingStrings(existing.PostalCode, incoming.PostalCode) ||
		conflictingCoordinates(existing.Lat, incoming.Lat) ||
		conflictingCoordinates(existing.Lng, incoming.Lng) {
		return existing, &MergeConflictError{
			Existing: existing,
			Incoming: incoming,
		}
	}

	return Record{
		CountryCode: mergeString(existing.CountryCode, incoming.CountryCode),
		Subdivision: mergeString(existing.Subdivision, incoming.Subdivision),
		City:        mergeString(existing.City, incoming.City),
		PostalCode:  mergeString(existing.PostalCode, incoming.PostalCode),
		Lat:         mergeCoordinate(existing.Lat, incoming.Lat),
		Lng:         mergeCoordinate(existing.Lng, incoming.Lng),
	}, nil
}
