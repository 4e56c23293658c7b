// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisReport is the predicate function for analysisreport builders.
type AnalysisReport func(*sql.Selector)

// AppSettings is the predicate function for appsettings builders.
type AppSettings func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// HAEntity is the predicate function for haentity builders.
type HAEntity func(*sql.Selector)

// Insight is the predicate function for insight builders.
type Insight func(*sql.Selector)

// InsightSchedule is the predicate function for insightschedule builders.
type InsightSchedule func(*sql.Selector)

// LLMUsage is the predicate function for llmusage builders.
type LLMUsage func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Proposal is the predicate function for proposal builders.
type Proposal func(*sql.Selector)
