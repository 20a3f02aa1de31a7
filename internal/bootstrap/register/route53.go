// register/route53.go
package register

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
)

type Route53Registrar struct {
	Client       *route53.Client
	HostedZoneID string
	DomainSuffix string
	TTL          int64
}

// NewRoute53Registrar loads AWS config and returns a registrar.
func NewRoute53Registrar(ctx context.Context, hostedZoneID, domainSuffix string, ttl int64) (*Route53Registrar, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &Route53Registrar{
		Client:       route53.NewFromConfig(awsCfg),
		HostedZoneID: hostedZoneID,
		DomainSuffix: strings.TrimSuffix(domainSuffix, "."),
		TTL:          ttl,
	}, nil
}

func (r *Route53Registrar) RegisterNode(ctx context.Context, nodeID, targetHost string, port int) error {
	recordName := fmt.Sprintf("%s.%s.", nodeID, r.DomainSuffix)
	if strings.HasSuffix(targetHost, ".") {
		targetHost = targetHost[:len(targetHost)-1]
	}

	input := &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(r.HostedZoneID),
		ChangeBatch: &types.ChangeBatch{
			Changes: []types.Change{
				{
					Action: types.ChangeActionUpsert,
					ResourceRecordSet: &types.ResourceRecordSet{
						Name: aws.String(recordName),
						Type: types.RRTypeSrv,
						TTL:  aws.Int64(r.TTL),
						ResourceRecords: []types.ResourceRecord{
							{
								Value: aws.String(fmt.Sprintf("0 0 %d %s.", port, targetHost)),
							},
						},
					},
				},
			},
		},
	}
	_, err := r.Client.ChangeResourceRecordSets(ctx, input)
	return err
}

func (r *Route53Registrar) DeregisterNode(ctx context.Context, nodeID, targetHost string, port int) error {
	recordName := fmt.Sprintf("%s.%s.", nodeID, r.DomainSuffix)
	if strings.HasSuffix(targetHost, ".") {
		targetHost = targetHost[:len(targetHost)-1]
	}

	input := &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(r.HostedZoneID),
		ChangeBatch: &types.ChangeBatch{
			Changes: []types.Change{
				{
					Action: types.ChangeActionDelete,
					ResourceRecordSet: &types.ResourceRecordSet{
						Name: aws.String(recordName),
						Type: types.RRTypeSrv,
						TTL:  aws.Int64(r.TTL),
						ResourceRecords: []types.ResourceRecord{
							{
								Value: aws.String(fmt.Sprintf("0 0 %d %s.", port, targetHost)),
							},
						},
					},
				},
			},
		},
	}
	_, err := r.Client.ChangeResourceRecordSets(ctx, input)
	return err
}

func (r *Route53Registrar) RenewNode(ctx context.Context, nodeID, targetHost string, port int) error {
	// Route53 needs no renewal, Upsert alone keeps the record alive.
	return nil
}

// Discover lists every SRV record under the hosted zone matching
// DomainSuffix and resolves each target to its current addresses.
func (r *Route53Registrar) Discover(ctx context.Context) ([]string, error) {
	var out []string
	input := &route53.ListResourceRecordSetsInput{
		HostedZoneId: aws.String(r.HostedZoneID),
	}
	paginator := route53.NewListResourceRecordSetsPaginator(r.Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list records: %w", err)
		}
		for _, rrset := range page.ResourceRecordSets {
			if rrset.Type != types.RRTypeSrv {
				continue
			}
			if !strings.HasSuffix(strings.TrimSuffix(*rrset.Name, "."), r.DomainSuffix) {
				continue
			}
			for _, rr := range rrset.ResourceRecords {
				var prio, weight, port int
				var target string
				if _, err := fmt.Sscanf(*rr.Value, "%d %d %d %s", &prio, &weight, &port, &target); err != nil {
					continue
				}
				target = strings.TrimSuffix(target, ".")
				ips, err := net.LookupHost(target)
				if err != nil {
					continue
				}
				for _, ip := range ips {
					out = append(out, fmt.Sprintf("%s:%d", ip, port))
				}
			}
		}
	}
	return out, nil
}

func (r *Route53Registrar) Close() error {
	// nothing to close
	return nil
}
