// Package report validates and compares persisted benchmark reports.
package report

// ReportSchema is the JSON Schema every report file must satisfy before
// it is accepted for comparison. It intentionally pins only the fields
// the comparison reads; reports may carry more.
const ReportSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "randbench report",
  "type": "object",
  "required": ["tool", "suite", "timestamp", "results"],
  "properties": {
    "tool": {
      "type": "string",
      "const": "randbench"
    },
    "version": {
      "type": "string"
    },
    "suite": {
      "type": "string",
      "minLength": 1
    },
    "timestamp": {
      "type": "string"
    },
    "results": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "iterations", "nsPerOp"],
        "properties": {
          "name": {
            "type": "string",
            "minLength": 1
          },
          "iterations": {
            "type": "integer",
            "minimum": 0
          },
          "nsPerOp": {
            "type": "number",
            "minimum": 0
          },
          "allocsPerOp": {
            "type": "number",
            "minimum": 0
          },
          "allocBytesPerOp": {
            "type": "number",
            "minimum": 0
          },
          "mbPerSec": {
            "type": "number",
            "minimum": 0
          },
          "extra": {
            "type": "object",
            "additionalProperties": {
              "type": "number"
            }
          }
        }
      }
    }
  }
}`
