// Package catalog holds the resources that own calendars: the fixed set of
// meeting locations with their rooms, and the registry of people that can be
// invited to meetings.
//
// Both are explicit values built once at start-up and injected into the
// services that need them. Lookups report absence through a found flag rather
// than a placeholder value.
package catalog
