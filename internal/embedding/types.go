package embedding

// Input types understood by the embedding model.
const (
	InputTypeQuery    = "query"
	InputTypeDocument = "document"
)

type GenerateInput struct {
	Text string
	// InputType defaults to InputTypeQuery.
	InputType string
}

type GenerateOutput struct {
	Vector []float32
}

type GenerateManyInput struct {
	Texts     []string
	InputType string
}

type GenerateManyOutput struct {
	Vectors [][]float32
}
