package integration

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"wsdlkit/internal/adapters"
	"wsdlkit/internal/app"
	"wsdlkit/internal/core"
	"wsdlkit/internal/types"
	"wsdlkit/tests/testutil"
)

func bankCatalogPath(t *testing.T) string {
	t.Helper()
	root := testutil.RepoRoot(t)
	return filepath.Join(root, "tests", "integration", "testdata", "bank.yaml")
}

// TestPortTypePipeline runs the full load-compile-build-attach flow over
// the committed bank catalog and checks the resulting port type in detail.
func TestPortTypePipeline(t *testing.T) {
	catalog, err := adapters.NewCatalogFileAdapter().Load(bankCatalogPath(t))
	require.NoError(t, err)

	def, err := core.NewCatalogCompiler().Compile(t.Context(), catalog)
	require.NoError(t, err)

	builder := core.NewPortTypeBuilder("AccountsPortType", adapters.NewSuffixClassifierAdapter())
	portType, err := builder.Build(t.Context(), def)
	require.NoError(t, err)
	require.NoError(t, def.AddPortType(portType))

	require.True(t, portType.Defined)
	require.Equal(t, types.NewQName("http://bank.example.com/accounts", "AccountsPortType"), portType.Name)
	require.Same(t, portType, def.PortType(portType.Name))

	var names []string
	for _, operation := range portType.Operations {
		names = append(names, operation.Name)
		require.True(t, operation.Defined)
	}
	require.Equal(t, []string{"OpenAccount", "CloseAccount", "NotifyStatement", "BalanceChanged"}, names)

	open := portType.Operation("OpenAccount")
	require.Equal(t, types.OperationTypeRequestResponse, open.Style)

	closeAccount := portType.Operation("CloseAccount")
	require.Equal(t, types.OperationTypeRequestResponse, closeAccount.Style)
	require.Len(t, closeAccount.Faults, 1)
	require.Equal(t, "CloseAccountFault", closeAccount.Faults[0].Name)
	require.Same(t, def.Message(types.NewQName("http://bank.example.com/accounts", "CloseAccountFault")), closeAccount.Faults[0].Message)

	notify := portType.Operation("NotifyStatement")
	require.Equal(t, types.OperationTypeOneWay, notify.Style)

	balance := portType.Operation("BalanceChanged")
	require.Equal(t, types.OperationTypeNotification, balance.Style)

	// AuditRecord matches no suffix and must appear nowhere.
	require.Nil(t, portType.Operation("AuditRecord"))
}

// TestPortTypePipelineViaApp exercises the same catalog through the app
// service and checks the two paths agree on the summarized outcome.
func TestPortTypePipelineViaApp(t *testing.T) {
	service := app.NewService()
	result, err := service.BuildPortType(t.Context(), app.BuildPortTypeRequest{
		CatalogPath:  bankCatalogPath(t),
		PortTypeName: "AccountsPortType",
	})
	require.NoError(t, err)

	expected := app.BuildPortTypeResult{
		PortTypeName:    "{http://bank.example.com/accounts}AccountsPortType",
		TargetNamespace: "http://bank.example.com/accounts",
		MessageCount:    8,
		Operations: []app.OperationSummary{
			{
				Name:       "OpenAccount",
				Style:      types.OperationTypeRequestResponse,
				InputName:  "OpenAccountRequest",
				OutputName: "OpenAccountResponse",
			},
			{
				Name:       "CloseAccount",
				Style:      types.OperationTypeRequestResponse,
				InputName:  "CloseAccountRequest",
				OutputName: "CloseAccountResponse",
				FaultNames: []string{"CloseAccountFault"},
			},
			{
				Name:      "NotifyStatement",
				Style:     types.OperationTypeOneWay,
				InputName: "NotifyStatementRequest",
			},
			{
				Name:       "BalanceChanged",
				Style:      types.OperationTypeNotification,
				OutputName: "BalanceChangedResponse",
			},
		},
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Fatalf("unexpected pipeline result (-want +got):\n%s", diff)
	}
}

// TestPortTypePipelineIdempotent builds twice from the same catalog and
// requires structurally identical port types.
func TestPortTypePipelineIdempotent(t *testing.T) {
	build := func() *types.PortType {
		catalog, err := adapters.NewCatalogFileAdapter().Load(bankCatalogPath(t))
		require.NoError(t, err)
		def, err := core.NewCatalogCompiler().Compile(t.Context(), catalog)
		require.NoError(t, err)
		builder := core.NewPortTypeBuilder("AccountsPortType", adapters.NewSuffixClassifierAdapter())
		portType, err := builder.Build(t.Context(), def)
		require.NoError(t, err)
		return portType
	}

	first := build()
	second := build()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated builds differ (-first +second):\n%s", diff)
	}
}
