package s3

import (
	"context"
	"errors"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/crossclust/blobstore"
)

// ErrConcurrentCommit is returned when another writer advanced the pointer
// between Latest and Commit.
var ErrConcurrentCommit = errors.New("concurrent commit detected")

// DDBClient is the subset of the DynamoDB API used by CommitStore.
// *dynamodb.Client satisfies it.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// CommitStore records the latest snapshot name per dataset in DynamoDB.
//
// Snapshot blobs themselves are immutable and content-named; the commit
// pointer is the only mutable piece of state, and DynamoDB conditional
// writes give it the compare-and-swap semantics S3 lacks, so multiple
// writers can coordinate safely.
//
// Table schema: partition key "dataset" (string); attributes "snapshot"
// (string) and "revision" (number).
//
//	aws dynamodb create-table \
//	  --table-name crossclust-commits \
//	  --attribute-definitions AttributeName=dataset,AttributeType=S \
//	  --key-schema AttributeName=dataset,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
type CommitStore struct {
	client DDBClient
	table  string
}

// NewCommitStore creates a CommitStore on the given table.
func NewCommitStore(client DDBClient, table string) *CommitStore {
	return &CommitStore{client: client, table: table}
}

// Latest returns the current snapshot name and revision for a dataset.
// Returns blobstore.ErrNotFound (revision 0) when no commit exists yet.
func (c *CommitStore) Latest(ctx context.Context, dataset string) (string, int64, error) {
	out, err := c.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(c.table),
		ConsistentRead: aws.Bool(true),
		Key: map[string]types.AttributeValue{
			"dataset": &types.AttributeValueMemberS{Value: dataset},
		},
	})
	if err != nil {
		return "", 0, err
	}
	if out.Item == nil {
		return "", 0, blobstore.ErrNotFound
	}

	snap, ok := out.Item["snapshot"].(*types.AttributeValueMemberS)
	if !ok {
		return "", 0, errors.New("commit item has no snapshot attribute")
	}
	rev := int64(0)
	if n, ok := out.Item["revision"].(*types.AttributeValueMemberN); ok {
		rev, err = strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return "", 0, err
		}
	}
	return snap.Value, rev, nil
}

// Commit atomically advances the pointer for a dataset to snapshot.
// expectedRevision must be the revision returned by Latest (0 for the first
// commit). Returns the new revision, or ErrConcurrentCommit when another
// writer got there first.
func (c *CommitStore) Commit(ctx context.Context, dataset, snapshot string, expectedRevision int64) (int64, error) {
	newRevision := expectedRevision + 1

	input := &dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item: map[string]types.AttributeValue{
			"dataset":  &types.AttributeValueMemberS{Value: dataset},
			"snapshot": &types.AttributeValueMemberS{Value: snapshot},
			"revision": &types.AttributeValueMemberN{Value: strconv.FormatInt(newRevision, 10)},
		},
	}
	if expectedRevision == 0 {
		input.ConditionExpression = aws.String("attribute_not_exists(dataset)")
	} else {
		input.ConditionExpression = aws.String("revision = :expected")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedRevision, 10)},
		}
	}

	if _, err := c.client.PutItem(ctx, input); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return 0, ErrConcurrentCommit
		}
		return 0, err
	}
	return newRevision, nil
}

// Remove deletes the pointer for a dataset. Removing a missing pointer is
// not an error.
func (c *CommitStore) Remove(ctx context.Context, dataset string) error {
	_, err := c.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(c.table),
		Key: map[string]types.AttributeValue{
			"dataset": &types.AttributeValueMemberS{Value: dataset},
		},
	})
	return err
}
