package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/elC0mpa/eni-doctor/cmd/mcp/response"
	"github.com/elC0mpa/eni-doctor/service"
	awsconfig "github.com/elC0mpa/eni-doctor/service/aws/config"
	awsec2 "github.com/elC0mpa/eni-doctor/service/aws/ec2"
	awssts "github.com/elC0mpa/eni-doctor/service/aws/sts"
	"github.com/elC0mpa/eni-doctor/service/eni"
)

// Options configures the AWS tools
type Options struct {
	Region  string
	Profile string
	Logger  logr.Logger
	Trace   bool
}

type awsServices struct {
	identity service.IdentityService
	ec2      awsec2.EC2Service
	region   string
}

type serviceFactory func(ctx context.Context) (*awsServices, error)

// RegisterAWSTools registers all ENI tools with the MCP server
func RegisterAWSTools(s *server.MCPServer, opts Options) {
	registerAWSTools(s, opts.Logger, newAWSServiceFactory(opts))
}

func newAWSServiceFactory(opts Options) serviceFactory {
	return func(ctx context.Context) (*awsServices, error) {
		configSvc := awsconfig.NewService(opts.Logger, opts.Trace)
		awsCfg, err := configSvc.GetAWSCfg(ctx, opts.Region, opts.Profile)
		if err != nil {
			return nil, err
		}

		return &awsServices{
			identity: awssts.NewService(awsCfg),
			ec2:      awsec2.NewService(awsCfg, opts.Logger),
			region:   awsCfg.Region,
		}, nil
	}
}

func registerAWSTools(s *server.MCPServer, log logr.Logger, newServices serviceFactory) {
	// Account info
	s.AddTool(
		mcp.NewTool("aws_get_account_info",
			mcp.WithDescription("Get AWS account identity information including account ID and ARN"),
		),
		makeAWSAccountInfoHandler(newServices),
	)

	// ENI listing
	s.AddTool(
		mcp.NewTool("aws_list_network_interfaces",
			mcp.WithDescription("List every Elastic Network Interface in the region with its status, type, subnet and VPC"),
		),
		makeAWSListNetworkInterfacesHandler(newServices),
	)

	// Status summary
	s.AddTool(
		mcp.NewTool("aws_get_eni_status_summary",
			mcp.WithDescription("Count Elastic Network Interfaces per status (available, in-use, attaching, ...)"),
		),
		makeAWSStatusSummaryHandler(newServices),
	)

	// Cleanup
	s.AddTool(
		mcp.NewTool("aws_delete_available_enis",
			mcp.WithDescription("Delete every Elastic Network Interface whose status is \"available\". Destructive: reports each deleted ID and each failure"),
			mcp.WithBoolean("confirm",
				mcp.Required(),
				mcp.Description("Must be true to actually delete the interfaces"),
			),
		),
		makeAWSDeleteAvailableHandler(log, newServices),
	)
}

func makeAWSAccountInfoHandler(newServices serviceFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svcs, err := newServices(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		info, err := svcs.identity.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		return jsonResult(response.ConvertAccountInfo(info))
	}
}

func makeAWSListNetworkInterfacesHandler(newServices serviceFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svcs, err := newServices(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		enis, err := svcs.ec2.ListNetworkInterfaces(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list network interfaces: %v", err)), nil
		}

		return jsonResult(response.ConvertNetworkInterfaces(enis))
	}
}

func makeAWSStatusSummaryHandler(newServices serviceFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svcs, err := newServices(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		enis, err := svcs.ec2.ListNetworkInterfaces(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list network interfaces: %v", err)), nil
		}

		accountID := "unknown"
		if info, err := svcs.identity.GetAccountInfo(ctx); err == nil {
			accountID = info.AccountID
		}

		return jsonResult(response.ConvertStatusSummary(accountID, svcs.region, eni.CountByStatus(enis)))
	}
}

func makeAWSDeleteAvailableHandler(log logr.Logger, newServices serviceFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !request.GetBool("confirm", false) {
			return mcp.NewToolResultError("Refusing to delete: set confirm to true"), nil
		}

		svcs, err := newServices(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		enis, err := svcs.ec2.ListNetworkInterfaces(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list network interfaces: %v", err)), nil
		}

		report, err := eni.DeleteAvailable(ctx, svcs.ec2, enis, log)

		return jsonResult(response.ConvertDeletionReport(report, err))
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
