// Package pipeline implements the stages around the post converter.
//
// This package handles the Markdown side of the conversion:
//   - Markdown preprocessing (byte order mark, line endings)
//   - YAML front matter extraction
//   - Tokenizing via goldmark into the flat token stream
//   - Code block language normalization via chroma
//
// Turning the token stream into post lines is handled separately by the
// postconv package. This separation keeps the converter independent of the
// parser, so any tokenizer producing the same stream shape can feed it.
package pipeline
