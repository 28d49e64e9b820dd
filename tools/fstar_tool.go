package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/fstarlabs/agent-tools/internal/telemetry"
	"github.com/fstarlabs/agent-tools/internal/verifier"
)

// FStarToolName is the model-facing name of the F* execution tool.
const FStarToolName = "tools/execute_fstar"

const fstarToolDescription = "A tool that executes the given fstar code."

// runtimeErrorPrefix starts every failure message Execute renders; the
// agent model keys off it to distinguish faults from verdicts.
const runtimeErrorPrefix = "Runtime error occurred.\n"

// contractViolationKind labels missing-input failures distinctly from
// transport and protocol faults.
const contractViolationKind = "contract violation"

// FStarExecuteInput is the model-facing parameter shape.
type FStarExecuteInput struct {
	Code string `json:"code" jsonschema_description:"F* code to execute"`
}

// FStarExecutionTool forwards a proof submission to the remote verification
// service and renders the outcome as a verdict line plus the verifier's
// diagnostics. The score in its results is always 0; pass/fail is
// message-encoded.
type FStarExecutionTool struct {
	descriptor Descriptor
	instances  *instanceSet
	client     *verifier.Client
	logger     zerolog.Logger
}

// NewFStarExecutionTool builds the tool around a configured verifier client.
func NewFStarExecutionTool(client *verifier.Client, logger zerolog.Logger) *FStarExecutionTool {
	params, required := GenerateParams[FStarExecuteInput]()
	return &FStarExecutionTool{
		descriptor: Descriptor{
			Name:        FStarToolName,
			Description: fstarToolDescription,
			Parameters:  params,
			Required:    required,
		},
		instances: newInstanceSet(),
		client:    client,
		logger:    logger.With().Str("tool", FStarToolName).Logger(),
	}
}

func (t *FStarExecutionTool) Descriptor() Descriptor { return t.descriptor }

// Create records an instance-id, generating one when the caller supplies
// none. The per-instance state beyond the ground truth is intentionally
// empty for this tool.
func (t *FStarExecutionTool) Create(ctx context.Context, req CreateRequest) (string, error) {
	return t.instances.add(req.InstanceID, req.GroundTruth), nil
}

// Execute submits params.code for the problem named by
// extras.tools_kwargs.example_name. It never returns an error: contract
// violations, transport faults and protocol faults all become a
// "Runtime error occurred." message with score 0.
func (t *FStarExecutionTool) Execute(ctx context.Context, instanceID string, params, extras json.RawMessage) Result {
	start := time.Now()

	code := gjson.GetBytes(params, "code")
	if !code.Exists() {
		return t.fail(instanceID, start, contractViolationKind, `missing required parameter "code"`)
	}

	problem := gjson.GetBytes(extras, "tools_kwargs.example_name")
	if !problem.Exists() {
		return t.fail(instanceID, start, contractViolationKind, `missing "tools_kwargs.example_name" in call context`)
	}

	resp, err := t.client.CheckProblemSolution(ctx, verifier.Request{
		Solution:  code.String(),
		ProblemID: problem.String(),
	})
	if err != nil {
		kind, detail := classify(err)
		t.logger.Warn().Str("problem_id", problem.String()).Str("kind", kind).Str("detail", detail).Msg("verification call failed")
		return t.fail(instanceID, start, kind, detail)
	}

	verdict := "False"
	if resp.Passed() {
		verdict = "True"
	}
	emitToolExec(FStarToolName, instanceID, start, "")
	return Result{
		Message:  "Verification Success: " + verdict + "\n" + resp.Messages,
		Score:    0,
		Metadata: emptyMetadata(),
	}
}

// Release drops the instance bookkeeping; releasing an unknown id is a no-op.
func (t *FStarExecutionTool) Release(ctx context.Context, instanceID string) error {
	t.instances.remove(instanceID)
	return nil
}

func (t *FStarExecutionTool) fail(instanceID string, start time.Time, kind, detail string) Result {
	emitToolExec(FStarToolName, instanceID, start, kind)
	return Result{
		Message:  fmt.Sprintf("%s%s: %s", runtimeErrorPrefix, kind, detail),
		Score:    0,
		Metadata: emptyMetadata(),
	}
}

func classify(err error) (kind, detail string) {
	var verr *verifier.Error
	if errors.As(err, &verr) {
		return string(verr.Kind), verr.Detail
	}
	return "runtime error", err.Error()
}

func emitToolExec(name, instanceID string, start time.Time, errKind string) {
	fields := map[string]any{
		"tool_name":   name,
		"instance_id": instanceID,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if errKind != "" {
		fields["error"] = errKind
	} else {
		fields["error"] = nil
	}
	telemetry.Emit("tool_exec", fields)
}
