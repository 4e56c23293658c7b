// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/aether-home/aether/ent/analysisreport"
	"github.com/aether-home/aether/ent/appsettings"
	"github.com/aether-home/aether/ent/conversation"
	"github.com/aether-home/aether/ent/haentity"
	"github.com/aether-home/aether/ent/insight"
	"github.com/aether-home/aether/ent/insightschedule"
	"github.com/aether-home/aether/ent/llmusage"
	"github.com/aether-home/aether/ent/message"
	"github.com/aether-home/aether/ent/proposal"
	"github.com/aether-home/aether/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisreportFields := schema.AnalysisReport{}.Fields()
	_ = analysisreportFields
	// analysisreportDescCreatedAt is the schema descriptor for created_at field.
	analysisreportDescCreatedAt := analysisreportFields[10].Descriptor()
	// analysisreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisreport.DefaultCreatedAt = analysisreportDescCreatedAt.Default.(func() time.Time)
	appsettingsFields := schema.AppSettings{}.Fields()
	_ = appsettingsFields
	// appsettingsDescUpdatedAt is the schema descriptor for updated_at field.
	appsettingsDescUpdatedAt := appsettingsFields[5].Descriptor()
	// appsettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appsettings.DefaultUpdatedAt = appsettingsDescUpdatedAt.Default.(func() time.Time)
	// appsettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appsettings.UpdateDefaultUpdatedAt = appsettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[5].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[6].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	haentityFields := schema.HAEntity{}.Fields()
	_ = haentityFields
	// haentityDescState is the schema descriptor for state field.
	haentityDescState := haentityFields[2].Descriptor()
	// haentity.DefaultState holds the default value on creation for the state field.
	haentity.DefaultState = haentityDescState.Default.(string)
	// haentityDescLastSynced is the schema descriptor for last_synced field.
	haentityDescLastSynced := haentityFields[6].Descriptor()
	// haentity.DefaultLastSynced holds the default value on creation for the last_synced field.
	haentity.DefaultLastSynced = haentityDescLastSynced.Default.(func() time.Time)
	// haentity.UpdateDefaultLastSynced holds the default value on update for the last_synced field.
	haentity.UpdateDefaultLastSynced = haentityDescLastSynced.UpdateDefault.(func() time.Time)
	insightFields := schema.Insight{}.Fields()
	_ = insightFields
	// insightDescConfidence is the schema descriptor for confidence field.
	insightDescConfidence := insightFields[5].Descriptor()
	// insight.DefaultConfidence holds the default value on creation for the confidence field.
	insight.DefaultConfidence = insightDescConfidence.Default.(float64)
	// insight.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	insight.ConfidenceValidator = func() func(float64) error {
		validators := insightDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// insightDescCreatedAt is the schema descriptor for created_at field.
	insightDescCreatedAt := insightFields[13].Descriptor()
	// insight.DefaultCreatedAt holds the default value on creation for the created_at field.
	insight.DefaultCreatedAt = insightDescCreatedAt.Default.(func() time.Time)
	insightscheduleFields := schema.InsightSchedule{}.Fields()
	_ = insightscheduleFields
	// insightscheduleDescEnabled is the schema descriptor for enabled field.
	insightscheduleDescEnabled := insightscheduleFields[2].Descriptor()
	// insightschedule.DefaultEnabled holds the default value on creation for the enabled field.
	insightschedule.DefaultEnabled = insightscheduleDescEnabled.Default.(bool)
	// insightscheduleDescLookbackHours is the schema descriptor for lookback_hours field.
	insightscheduleDescLookbackHours := insightscheduleFields[5].Descriptor()
	// insightschedule.DefaultLookbackHours holds the default value on creation for the lookback_hours field.
	insightschedule.DefaultLookbackHours = insightscheduleDescLookbackHours.Default.(int)
	// insightschedule.LookbackHoursValidator is a validator for the "lookback_hours" field. It is called by the builders before save.
	insightschedule.LookbackHoursValidator = func() func(int) error {
		validators := insightscheduleDescLookbackHours.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(lookback_hours int) error {
			for _, fn := range fns {
				if err := fn(lookback_hours); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// insightscheduleDescRunCount is the schema descriptor for run_count field.
	insightscheduleDescRunCount := insightscheduleFields[17].Descriptor()
	// insightschedule.DefaultRunCount holds the default value on creation for the run_count field.
	insightschedule.DefaultRunCount = insightscheduleDescRunCount.Default.(int)
	// insightscheduleDescCreatedAt is the schema descriptor for created_at field.
	insightscheduleDescCreatedAt := insightscheduleFields[18].Descriptor()
	// insightschedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	insightschedule.DefaultCreatedAt = insightscheduleDescCreatedAt.Default.(func() time.Time)
	// insightscheduleDescUpdatedAt is the schema descriptor for updated_at field.
	insightscheduleDescUpdatedAt := insightscheduleFields[19].Descriptor()
	// insightschedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	insightschedule.DefaultUpdatedAt = insightscheduleDescUpdatedAt.Default.(func() time.Time)
	// insightschedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	insightschedule.UpdateDefaultUpdatedAt = insightscheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmusageFields := schema.LLMUsage{}.Fields()
	_ = llmusageFields
	// llmusageDescSpanKind is the schema descriptor for span_kind field.
	llmusageDescSpanKind := llmusageFields[3].Descriptor()
	// llmusage.DefaultSpanKind holds the default value on creation for the span_kind field.
	llmusage.DefaultSpanKind = llmusageDescSpanKind.Default.(string)
	// llmusageDescPromptTokens is the schema descriptor for prompt_tokens field.
	llmusageDescPromptTokens := llmusageFields[6].Descriptor()
	// llmusage.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	llmusage.DefaultPromptTokens = llmusageDescPromptTokens.Default.(int)
	// llmusageDescCompletionTokens is the schema descriptor for completion_tokens field.
	llmusageDescCompletionTokens := llmusageFields[7].Descriptor()
	// llmusage.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	llmusage.DefaultCompletionTokens = llmusageDescCompletionTokens.Default.(int)
	// llmusageDescLatencyMs is the schema descriptor for latency_ms field.
	llmusageDescLatencyMs := llmusageFields[8].Descriptor()
	// llmusage.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmusage.DefaultLatencyMs = llmusageDescLatencyMs.Default.(int)
	// llmusageDescIsError is the schema descriptor for is_error field.
	llmusageDescIsError := llmusageFields[9].Descriptor()
	// llmusage.DefaultIsError holds the default value on creation for the is_error field.
	llmusage.DefaultIsError = llmusageDescIsError.Default.(bool)
	// llmusageDescCreatedAt is the schema descriptor for created_at field.
	llmusageDescCreatedAt := llmusageFields[10].Descriptor()
	// llmusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmusage.DefaultCreatedAt = llmusageDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescContent is the schema descriptor for content field.
	messageDescContent := messageFields[3].Descriptor()
	// message.DefaultContent holds the default value on creation for the content field.
	message.DefaultContent = messageDescContent.Default.(string)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[7].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	proposalFields := schema.Proposal{}.Fields()
	_ = proposalFields
	// proposalDescCreatedAt is the schema descriptor for created_at field.
	proposalDescCreatedAt := proposalFields[13].Descriptor()
	// proposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	proposal.DefaultCreatedAt = proposalDescCreatedAt.Default.(func() time.Time)
}
