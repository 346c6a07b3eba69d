// Package predictor wraps the pretrained chemprop multitask model and turns
// SMILES strings into photochemical property predictions. It is structured
// into small files by concern:
//
//   - adapter.go: the Adapter interface satisfied by all backends.
//   - config.go: Config and package defaults; New applies defaults.
//   - errors.go: error types and helpers (IsConfiguration, IsInference).
//   - chemprop.go: subprocess-backed adapter driving the chemprop CLI.
//   - parse.go: extraction of prediction columns from chemprop's output CSV.
//
// The adapter resolves the model artifacts once at construction; Predict
// performs a single blocking backend invocation per call and returns results
// in input order. There is no retry, queueing, or row-level recovery: a
// batch either fully succeeds or fails with an inference error.
package predictor
