package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-baas-api/internal/domain"
)

// Repo provides typed DynamoDB operations for one resource table. Items are
// keyed by "id" and the unique key is looked up through the email GSI.
type Repo[T domain.Keyed] struct {
	client    API
	tableName string
	noun      string
}

func NewRepo[T domain.Keyed](client API, tableName, noun string) *Repo[T] {
	return &Repo[T]{client: client, tableName: tableName, noun: noun}
}

func (r *Repo[T]) List(ctx context.Context) ([]T, error) {
	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	out := []T{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, storageErr("scan", r.tableName, err)
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, storageErr("unmarshal", r.tableName, err)
		}
		out = append(out, items...)
	}
	return out, nil
}

func (r *Repo[T]) Get(ctx context.Context, id string) (*T, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey(attrID, id),
	})
	if err != nil {
		return nil, storageErr("get", r.tableName, err)
	}
	if out.Item == nil {
		return nil, r.notFound(id)
	}
	var v T
	if err := attributevalue.UnmarshalMap(out.Item, &v); err != nil {
		return nil, storageErr("unmarshal", r.tableName, err)
	}
	return &v, nil
}

// Insert rejects a taken unique key, then puts the item on condition that the
// id is new. The GSI lookup and the put are not atomic with each other.
func (r *Repo[T]) Insert(ctx context.Context, v T) error {
	if err := r.checkUniqueKey(ctx, v); err != nil {
		return err
	}
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return storageErr("marshal", r.tableName, err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": attrID},
	})
	if isConditionFailed(err) {
		return domain.NewFault(domain.ErrConflict, "%s w/ id=%s already exists", r.noun, v.ResourceID())
	}
	if err != nil {
		return storageErr("put", r.tableName, err)
	}
	return nil
}

// Put overwrites every non-key attribute of an existing item. A unique key
// owned by another item is rejected first, with the same caveat as Insert.
func (r *Repo[T]) Put(ctx context.Context, v T) error {
	if err := r.checkUniqueKey(ctx, v); err != nil {
		return err
	}
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return storageErr("marshal", r.tableName, err)
	}
	delete(item, attrID)
	ue, err := buildUpdateExpr(item)
	if err != nil {
		return storageErr("update", r.tableName, err)
	}
	ue.Names["#pk"] = attrID
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey(attrID, v.ResourceID()),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	if isConditionFailed(err) {
		return r.notFound(v.ResourceID())
	}
	if err != nil {
		return storageErr("update", r.tableName, err)
	}
	return nil
}

// Delete is a hard delete; a missing item is reported as not found.
func (r *Repo[T]) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      strKey(attrID, id),
		ConditionExpression:      aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": attrID},
	})
	if isConditionFailed(err) {
		return r.notFound(id)
	}
	if err != nil {
		return storageErr("delete", r.tableName, err)
	}
	return nil
}

// checkUniqueKey returns a conflict when the GSI holds v's unique key under
// an id other than v's own.
func (r *Repo[T]) checkUniqueKey(ctx context.Context, v T) error {
	k := v.UniqueKey()
	if k == "" {
		return nil
	}
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(emailIndex),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": attrEmail},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: k}},
		Limit:                     aws.Int32(2),
	})
	if err != nil {
		return storageErr("query", r.tableName, err)
	}
	for _, item := range out.Items {
		if owner, ok := item[attrID].(*types.AttributeValueMemberS); ok && owner.Value == v.ResourceID() {
			continue
		}
		return domain.NewFault(domain.ErrConflict, "Email %s is already registered", k)
	}
	return nil
}

func (r *Repo[T]) notFound(id string) error {
	return domain.NewFault(domain.ErrNotFound, "%s w/ id=%s Not Found", r.noun, id)
}
