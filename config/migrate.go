package config

// The configuration schema went through several iterations: an early
// version stored the API key and a default prompt directly, a later one
// carried an environments map selecting between several key variables.
// Each step below detects one legacy variant and transforms the generic
// document toward the current schema, reporting whether it changed
// anything.

type migration struct {
	name  string
	apply func(doc map[string]any, configDir string) bool
}

var migrations = []migration{
	{name: "drop-legacy-top-level-keys", apply: dropLegacyTopLevelKeys},
	{name: "resolve-environments-map", apply: resolveEnvironmentsMap},
	{name: "backfill-api-key-env-var", apply: backfillAPIKeyEnvVar},
	{name: "backfill-image-output-dir", apply: backfillImageOutputDir},
}

// migrate runs the migration pipeline over the document in order and
// reports whether any step changed it.
func migrate(doc map[string]any, configDir string) bool {
	changed := false
	for _, m := range migrations {
		if m.apply(doc, configDir) {
			changed = true
		}
	}
	return changed
}

// dropLegacyTopLevelKeys removes keys from the first schema generation:
// the stored default prompt and the plaintext API key.
func dropLegacyTopLevelKeys(doc map[string]any, _ string) bool {
	changed := false
	for _, key := range []string{"default_prompt", "gemini_api_key"} {
		if _, ok := doc[key]; ok {
			delete(doc, key)
			changed = true
		}
	}
	return changed
}

// resolveEnvironmentsMap collapses the legacy
// gemini_api.environment/environments pair into a single api_key_env_var
// and drops the mapping keys.
func resolveEnvironmentsMap(doc map[string]any, _ string) bool {
	table, ok := doc["gemini_api"].(map[string]any)
	if !ok {
		return false
	}

	selected, hasSelector := table["environment"]
	environments, hasMap := table["environments"]
	if !hasSelector && !hasMap {
		return false
	}

	envVar := ""
	if name, ok := selected.(string); ok {
		if mapping, ok := environments.(map[string]any); ok {
			if value, ok := mapping[name].(string); ok {
				envVar = value
			}
		}
	}
	if envVar == "" {
		envVar = DefaultAPIKeyEnvVar
	}

	table["api_key_env_var"] = envVar
	delete(table, "environment")
	delete(table, "environments")
	return true
}

// backfillAPIKeyEnvVar guarantees a non-empty api_key_env_var.
func backfillAPIKeyEnvVar(doc map[string]any, _ string) bool {
	table, ok := doc["gemini_api"].(map[string]any)
	if !ok {
		doc["gemini_api"] = map[string]any{"api_key_env_var": DefaultAPIKeyEnvVar}
		return true
	}

	if value, ok := table["api_key_env_var"].(string); !ok || value == "" {
		table["api_key_env_var"] = DefaultAPIKeyEnvVar
		return true
	}
	return false
}

// backfillImageOutputDir fills a missing, empty, or non-string output
// directory with the config file's own parent directory.
func backfillImageOutputDir(doc map[string]any, configDir string) bool {
	if value, ok := doc["image_output_dir"].(string); ok && value != "" {
		return false
	}
	doc["image_output_dir"] = configDir
	return true
}
