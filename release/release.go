package release

// SDKDotVersion represents the dot version for the plugin SDK and its harness.
var SDKDotVersion = "0.3.1"

// PluginConstraint is the range of plugin contract versions this SDK accepts.
var PluginConstraint = ">= 1.0, < 2.0"
