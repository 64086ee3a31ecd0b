package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-assist/internal/capability"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProbeCapabilityImpl_Query(t *testing.T) {
	tests := map[string]struct {
		kind            domain.CapabilityKind
		options         map[string]string
		setExpectations func(f *capabilityFixture)
		expectedStatus  domain.AvailabilityStatus
		expectedErr     string
	}{
		"translator-downloadable": {
			kind: domain.CapabilityKind_Translator,
			options: map[string]string{
				domain.ConfigField_SourceLanguage: "en",
				domain.ConfigField_TargetLanguage: "ja",
			},
			setExpectations: func(f *capabilityFixture) {
				f.providers[domain.CapabilityKind_Translator].EXPECT().
					Availability(mock.Anything, mock.Anything).
					Return(domain.AvailabilityStatus_Downloadable, nil).Once()
			},
			expectedStatus: domain.AvailabilityStatus_Downloadable,
		},
		"writer-unavailable": {
			kind: domain.CapabilityKind_Writer,
			setExpectations: func(f *capabilityFixture) {
				f.providers[domain.CapabilityKind_Writer].EXPECT().
					Availability(mock.Anything, mock.Anything).
					Return(domain.AvailabilityStatus_Unavailable, nil).Once()
			},
			expectedStatus: domain.AvailabilityStatus_Unavailable,
		},
		"provider-absent": {
			kind:           domain.CapabilityKind_Summarizer,
			expectedStatus: domain.AvailabilityStatus_Unavailable,
			expectedErr:    "ProviderAbsent",
		},
		"invalid-config": {
			kind:           domain.CapabilityKind_Rewriter,
			options:        map[string]string{domain.ConfigField_Length: "huge"},
			expectedStatus: domain.AvailabilityStatus_Unavailable,
			expectedErr:    "InvalidConfig",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newCapabilityFixture(t, domain.CapabilityKind_Writer, domain.CapabilityKind_Rewriter, domain.CapabilityKind_Translator)
			if tt.setExpectations != nil {
				tt.setExpectations(f)
			}

			pci := NewProbeCapabilityImpl(f.registry)

			status, err := pci.Query(context.Background(), tt.kind, tt.options)
			assert.Equal(t, tt.expectedErr, domain.ErrorName(err))
			assert.Equal(t, tt.expectedStatus, status)
			assert.Empty(t, f.registry.Sessions())
		})
	}
}

func TestInitProbeCapability_Initialize(t *testing.T) {
	ipc := InitProbeCapability{Registry: &capability.Registry{}}

	ctx, err := ipc.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[ProbeCapability]()
	require.NoError(t, err)
	assert.NotNil(t, registered)
}
