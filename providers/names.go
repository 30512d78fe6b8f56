package providers

const (
	// Identifier for RFC 8805 geofeeds.
	NameGeofeed = "geofeed"

	// Identifier for CSV files with IP ranges: start,finish,country,...
	NameRanges = "ranges"

	// Identifier for Amazon Web Services ip-ranges.json.
	NameAWS = "aws"

	// Identifier for Oracle Cloud public_ip_ranges.json.
	NameOracle = "oracle"

	// Identifier for Pingdom probe servers RSS feed.
	NamePingdom = "pingdom"

	// Identifier for StatusCake locations.
	NameStatusCake = "statuscake"

	// Identifier for updown.io nodes.
	NameUpdown = "updown"

	// Identifier for HetrixTools uptime monitor IPs.
	NameHetrix = "hetrix"
)
