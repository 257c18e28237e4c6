package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"http": map[string]any{
			"maxRequestBodySize": "",
			"timeouts": map[string]any{
				"readHeaderTimeout": "5s",
			},
		},
		"worker": map[string]any{
			"pushAudience": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "HTTP_TIMEOUTS_READHEADERTIMEOUT", want: "http.timeouts.readHeaderTimeout"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "WORKER_PUSHAUDIENCE", want: "worker.pushAudience"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Content)
	assert.Equal(t, defaultTimezone, cfg.Content.Timezone)
	require.NotNil(t, cfg.Reminder)
	assert.Equal(t, time.Minute, cfg.Reminder.Interval)
	require.NotNil(t, cfg.Worker)
}

func TestContentConfig_Location(t *testing.T) {
	loc, err := (&ContentConfig{Timezone: "UTC"}).Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = (&ContentConfig{Timezone: "Not/AZone"}).Location()
	assert.Error(t, err)
}

func TestFirebaseConfig_IsConfigured(t *testing.T) {
	var nilCfg *FirebaseConfig
	assert.False(t, nilCfg.IsConfigured())
	assert.False(t, (&FirebaseConfig{}).IsConfigured())
	assert.True(t, (&FirebaseConfig{ProjectID: "manna-app"}).IsConfigured())
}
