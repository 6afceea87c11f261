package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wsdlkit/internal/app"
)

type portTypeOptions struct {
	Catalog        string
	Name           string
	RequestSuffix  string
	ResponseSuffix string
	FaultSuffix    string
}

func newPortTypeCommand() *cobra.Command {
	opts := portTypeOptions{}
	cmd := &cobra.Command{
		Use:   "porttype",
		Short: "Build a port type from a message catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPortType(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "Message catalog path")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Port type name")
	cmd.Flags().StringVar(&opts.RequestSuffix, "request-suffix", "", "Suffix marking input messages (default Request)")
	cmd.Flags().StringVar(&opts.ResponseSuffix, "response-suffix", "", "Suffix marking output messages (default Response)")
	cmd.Flags().StringVar(&opts.FaultSuffix, "fault-suffix", "", "Suffix marking fault messages (default Fault)")
	_ = viper.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("port_type_name", cmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("request_suffix", cmd.Flags().Lookup("request-suffix"))
	_ = viper.BindPFlag("response_suffix", cmd.Flags().Lookup("response-suffix"))
	_ = viper.BindPFlag("fault_suffix", cmd.Flags().Lookup("fault-suffix"))
	return cmd
}

func runPortType(ctx context.Context, cmd *cobra.Command, opts portTypeOptions) error {
	service := newAppService()
	result, err := service.BuildPortType(ctx, app.BuildPortTypeRequest{
		CatalogPath:    resolveString(cmd, opts.Catalog, "catalog", "catalog"),
		PortTypeName:   resolveString(cmd, opts.Name, "port_type_name", "name"),
		RequestSuffix:  resolveString(cmd, opts.RequestSuffix, "request_suffix", "request-suffix"),
		ResponseSuffix: resolveString(cmd, opts.ResponseSuffix, "response_suffix", "response-suffix"),
		FaultSuffix:    resolveString(cmd, opts.FaultSuffix, "fault_suffix", "fault-suffix"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("port type: %s\n", result.PortTypeName)
	fmt.Printf("messages: %d, operations: %d\n", result.MessageCount, len(result.Operations))
	for _, operation := range result.Operations {
		style := string(operation.Style)
		if style == "" {
			style = "undefined"
		}
		fmt.Printf("- %s (%s)", operation.Name, style)
		if operation.InputName != "" {
			fmt.Printf(" input=%s", operation.InputName)
		}
		if operation.OutputName != "" {
			fmt.Printf(" output=%s", operation.OutputName)
		}
		fmt.Println()
		if len(operation.FaultNames) > 0 {
			fmt.Printf("  faults: %s\n", strings.Join(operation.FaultNames, ", "))
		}
	}
	return nil
}
