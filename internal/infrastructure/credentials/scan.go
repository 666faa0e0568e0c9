package credentials

import (
	"regexp"
)

var (
	quotedKeyPattern = regexp.MustCompile(`(?s)"private_key"\s*:\s*"(.*?)"\s*(?:,|})`)
	barePEMPattern   = regexp.MustCompile(`(?s)-----BEGIN (?:RSA )?PRIVATE KEY-----.*?-----END (?:RSA )?PRIVATE KEY-----(?:\\n|\n)?`)
)

// scanFields pulls service-account fields out of a structurally broken blob.
// Values come out verbatim; the repair step runs on them afterwards exactly
// as it would on cleanly decoded ones.
func scanFields(raw []byte) map[string]string {
	fields := make(map[string]string)

	if m := quotedKeyPattern.FindSubmatch(raw); m != nil {
		fields["private_key"] = string(m[1])
	} else if m := barePEMPattern.Find(raw); m != nil {
		fields["private_key"] = string(m)
	}

	for _, name := range []string{"type", "project_id", "private_key_id", "client_email", "client_id", "token_uri"} {
		re := regexp.MustCompile(`"` + name + `"\s*:\s*"([^"]*)"`)
		if m := re.FindSubmatch(raw); m != nil {
			fields[name] = string(m[1])
		}
	}

	if fields["private_key"] == "" {
		delete(fields, "private_key")
	}
	return fields
}
