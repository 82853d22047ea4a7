// Package models defines the client-side data model of the evidence
// timeline: users and their roles, timeline events, event write payloads
// and locally held attachments.
package models
