package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAdapter stores one item per snapshot key in a single table, keyed by
// "snapshotKey". This is the deployed counterpart of the browser-local
// storage the demo client used.
type DynamoAdapter struct {
	Client *dynamodb.Client
	Table  string
}

type snapshotItem struct {
	SnapshotKey string `dynamodbav:"snapshotKey"`
	Value       string `dynamodbav:"value"`
	UpdatedAt   string `dynamodbav:"updatedAt"`
}

// InitializeDynamoDBClient initializes the DynamoDB client from the ambient
// AWS configuration.
func InitializeDynamoDBClient() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoAdapter(client *dynamodb.Client, table string) *DynamoAdapter {
	return &DynamoAdapter{Client: client, Table: table}
}

func (d *DynamoAdapter) key(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"snapshotKey": &types.AttributeValueMemberS{Value: key},
	}
}

func (d *DynamoAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	output, err := d.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &d.Table,
		Key:       d.key(key),
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to get snapshot %q from table '%s': %w", key, d.Table, err)
	}
	if output.Item == nil {
		return "", false, nil
	}
	var item snapshotItem
	if err := attributevalue.UnmarshalMap(output.Item, &item); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal snapshot %q: %w", key, err)
	}
	return item.Value, true, nil
}

func (d *DynamoAdapter) Set(ctx context.Context, key, value string) error {
	item := snapshotItem{
		SnapshotKey: key,
		Value:       value,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %q: %w", key, err)
	}
	_, err = d.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &d.Table,
		Item:      marshaled,
	})
	if err != nil {
		return fmt.Errorf("failed to put snapshot %q in table '%s': %w", key, d.Table, err)
	}
	return nil
}

func (d *DynamoAdapter) Delete(ctx context.Context, key string) error {
	_, err := d.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &d.Table,
		Key:       d.key(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %q from table '%s': %w", key, d.Table, err)
	}
	return nil
}

func (d *DynamoAdapter) Clear(ctx context.Context) error {
	projection := "snapshotKey"
	output, err := d.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:            &d.Table,
		ProjectionExpression: &projection,
	})
	if err != nil {
		return fmt.Errorf("failed to scan table '%s': %w", d.Table, err)
	}
	for _, item := range output.Items {
		attr, ok := item["snapshotKey"].(*types.AttributeValueMemberS)
		if !ok {
			continue
		}
		if err := d.Delete(ctx, attr.Value); err != nil {
			return err
		}
	}
	return nil
}
