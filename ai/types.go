package ai

// DefaultEntityTypes defines the entity-type vocabulary passed to the
// extraction model. The set is model configuration: it is handed through
// to the extractor unchanged and never interpreted by the pipeline.
var DefaultEntityTypes = []string{
	"person",
	"organization",
	"location",
	"event",
	"work_of_art",
	"product",
	"service",
	"date",
	"number",
	"price",
	"address",
	"phone_number",
	"misc",
}
