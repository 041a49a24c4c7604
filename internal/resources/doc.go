// Package resources provides MCP resources for exposing server metadata.
// Resources are read-only data sources that MCP clients can fetch, such as
// the supported operation catalog and the report name lists.
package resources
