// Package tools defines the tool lifecycle contract and its implementations.
//
// Includes:
//   - Tool: descriptor introspection, per-episode create/execute/release.
//   - GenerateParams[T](): derive parameter schemas from Go structs.
//   - ListTool: static catalog of invocable tools.
//   - FStarExecutionTool: remote F* proof verification over HTTP.
//   - Invariants: Execute never propagates an error; failures are rendered
//     into the result message with score 0.
package tools
