package narrative

// NewGeminiGeneratorForTest builds a generator around a fake model client.
var NewGeminiGeneratorForTest = newGeminiGenerator

type ContentGenerator = contentGenerator
