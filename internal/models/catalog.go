package models

// ModelConfig describes one configured completion model. The catalog is
// loaded once at startup and never mutated.
type ModelConfig struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
	Category    string `json:"category"` // "free" | "premium"
}

// Catalog is the fixed, ordered list of configured models.
type Catalog []ModelConfig

// DefaultCatalog returns the OpenRouter model lineup the arena runs against.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "minimax/minimax-m2:free", DisplayName: "MiniMax M2", Category: "free"},
		{ID: "meituan/longcat-flash-chat:free", DisplayName: "LongCat Flash", Category: "free"},
		{ID: "openai/gpt-oss-20b:free", DisplayName: "GPT-OSS 20B", Category: "free"},
		{ID: "z-ai/glm-4.5-air:free", DisplayName: "GLM-4.5 Air", Category: "free"},
		{ID: "cognitivecomputations/dolphin-mistral-24b-venice-edition:free", DisplayName: "Dolphin Mistral", Category: "free"},
		{ID: "deepseek/deepseek-v3.2-exp", DisplayName: "DeepSeek V3.2", Category: "premium"},
		{ID: "x-ai/grok-4-fast", DisplayName: "Grok-4 Fast", Category: "premium"},
		{ID: "arcee-ai/afm-4.5b", DisplayName: "AFM-4.5B", Category: "premium"},
		{ID: "openai/gpt-oss-120b:exacto", DisplayName: "GPT-OSS 120B", Category: "premium"},
	}
}

// IDs returns the model identifiers in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, m := range c {
		ids = append(ids, m.ID)
	}
	return ids
}

// ByID looks up a model config by identifier.
func (c Catalog) ByID(id string) (ModelConfig, bool) {
	for _, m := range c {
		if m.ID == id {
			return m, true
		}
	}
	return ModelConfig{}, false
}

// DisplayName resolves a model's display name, falling back to the raw
// identifier for models not in the catalog.
func (c Catalog) DisplayName(id string) string {
	if m, ok := c.ByID(id); ok {
		return m.DisplayName
	}
	return id
}

// FirstInCategory returns the first catalog entry with the given category tag.
func (c Catalog) FirstInCategory(category string) (ModelConfig, bool) {
	for _, m := range c {
		if m.Category == category {
			return m, true
		}
	}
	return ModelConfig{}, false
}
