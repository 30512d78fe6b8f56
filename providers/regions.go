package providers

import "github.com/9seconds/cartographer/cartolib"

// Locations of cloud regions were gathered manually from vendor
// documentation.
var (
	awsRegions = map[string]cartolib.Record{
		"us-east-1":      {CountryCode: "US", Subdivision: "US-VA"},
		"us-east-2":      {CountryCode: "US", Subdivision: "US-OH"},
		"us-west-1":      {CountryCode: "US", Subdivision: "US-CA"},
		"us-west-2":      {CountryCode: "US", Subdivision: "US-OR"},
		"us-gov-east-1":  {CountryCode: "US"},
		"us-gov-west-1":  {CountryCode: "US"},
		"af-south-1":     {CountryCode: "ZA"},
		"ap-east-1":      {CountryCode: "HK"},
		"ap-south-1":     {CountryCode: "IN"},
		"ap-south-2":     {CountryCode: "IN"},
		"ap-northeast-1": {CountryCode: "JP"},
		"ap-northeast-2": {CountryCode: "KR"},
		"ap-northeast-3": {CountryCode: "JP"},
		"ap-southeast-1": {CountryCode: "SG"},
		"ap-southeast-2": {CountryCode: "AU"},
		"ap-southeast-3": {CountryCode: "ID"},
		"ap-southeast-4": {CountryCode: "AU"},
		"ap-southeast-5": {CountryCode: "MY"},
		"ca-central-1":   {CountryCode: "CA"},
		"ca-west-1":      {CountryCode: "CA"},
		"cn-north-1":     {CountryCode: "CN"},
		"cn-northwest-1": {CountryCode: "CN"},
		"eu-central-1":   {CountryCode: "DE"},
		"eu-central-2":   {CountryCode: "CH"},
		"eu-north-1":     {CountryCode: "SE"},
		"eu-south-1":     {CountryCode: "IT"},
		"eu-south-2":     {CountryCode: "ES"},
		"eu-west-1":      {CountryCode: "IE"},
		"eu-west-2":      {CountryCode: "GB"},
		"eu-west-3":      {CountryCode: "FR"},
		"il-central-1":   {CountryCode: "IL"},
		"me-central-1":   {CountryCode: "AE"},
		"me-south-1":     {CountryCode: "BH"},
		"sa-east-1":      {CountryCode: "BR"},
	}

	oracleRegions = map[string]cartolib.Record{
		"af-johannesburg-1": {CountryCode: "ZA"},
		"ap-chuncheon-1":    {CountryCode: "KR"},
		"ap-hyderabad-1":    {CountryCode: "IN"},
		"ap-melbourne-1":    {CountryCode: "AU"},
		"ap-mumbai-1":       {CountryCode: "IN"},
		"ap-osaka-1":        {CountryCode: "JP"},
		"ap-seoul-1":        {CountryCode: "KR"},
		"ap-singapore-1":    {CountryCode: "SG"},
		"ap-singapore-2":    {CountryCode: "SG"},
		"ap-sydney-1":       {CountryCode: "AU"},
		"ap-tokyo-1":        {CountryCode: "JP"},
		"ca-montreal-1":     {CountryCode: "CA"},
		"ca-toronto-1":      {CountryCode: "CA"},
		"eu-amsterdam-1":    {CountryCode: "NL"},
		"eu-frankfurt-1":    {CountryCode: "DE"},
		"eu-jovanovac-1":    {CountryCode: "RS"},
		"eu-madrid-1":       {CountryCode: "ES"},
		"eu-marseille-1":    {CountryCode: "FR"},
		"eu-milan-1":        {CountryCode: "IT"},
		"eu-paris-1":        {CountryCode: "FR"},
		"eu-stockholm-1":    {CountryCode: "SE"},
		"eu-zurich-1":       {CountryCode: "CH"},
		"il-jerusalem-1":    {CountryCode: "IL"},
		"me-abudhabi-1":     {CountryCode: "AE"},
		"me-dubai-1":        {CountryCode: "AE"},
		"me-jeddah-1":       {CountryCode: "SA"},
		"me-riyadh-1":       {CountryCode: "SA"},
		"mx-monterrey-1":    {CountryCode: "MX"},
		"mx-queretaro-1":    {CountryCode: "MX"},
		"sa-bogota-1":       {CountryCode: "CO"},
		"sa-santiago-1":     {CountryCode: "CL"},
		"sa-saopaulo-1":     {CountryCode: "BR"},
		"sa-valparaiso-1":   {CountryCode: "CL"},
		"sa-vinhedo-1":      {CountryCode: "BR"},
		"uk-cardiff-1":      {CountryCode: "GB"},
		"uk-london-1":       {CountryCode: "GB"},
		"us-ashburn-1":      {CountryCode: "US", Subdivision: "US-VA"},
		"us-chicago-1":      {CountryCode: "US", Subdivision: "US-IL"},
		"us-phoenix-1":      {CountryCode: "US", Subdivision: "US-AZ"},
		"us-sanjose-1":      {CountryCode: "US", Subdivision: "US-CA"},
		"us-saltlake-2":     {CountryCode: "US", Subdivision: "US-UT"},
	}

	// HetrixTools names its monitoring nodes like wk3-xxx. A number
	// identifies a location.
	hetrixLocations = map[string]cartolib.Record{
		"wk1":  {CountryCode: "US", Subdivision: "US-NY", City: "New York"},
		"wk2":  {CountryCode: "US", Subdivision: "US-CA", City: "San Francisco"},
		"wk3":  {CountryCode: "NL", Subdivision: "NL-NH", City: "Amsterdam"},
		"wk4":  {CountryCode: "GB", Subdivision: "GB-LND", City: "London"},
		"wk5":  {CountryCode: "DE", Subdivision: "DE-HE", City: "Frankfurt"},
		"wk6":  {CountryCode: "SG", Subdivision: "SG-01", City: "Singapore"},
		"wk7":  {CountryCode: "US", Subdivision: "US-TX", City: "Dallas"},
		"wk8":  {CountryCode: "AUS", Subdivision: "AU-NSW", City: "Sydney"},
		"wk9":  {CountryCode: "BR", Subdivision: "BR-SP", City: "São Paulo"},
		"wk10": {CountryCode: "JP", Subdivision: "JP-13", City: "Tokyo"},
		"wk11": {CountryCode: "IN", Subdivision: "IN-MH", City: "Mumbai"},
		"wk12": {CountryCode: "PL", Subdivision: "PL-MZ", City: "Warsaw"},
	}
)
