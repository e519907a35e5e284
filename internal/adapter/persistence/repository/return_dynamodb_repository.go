package repository

import (
	"context"
	"errors"
	"time"

	"boomerang/internal/domain/entities"
	"boomerang/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReturnsTableName = "returns"
	returnsUserIDIndex      = "user_id-index"
)

type addressItem struct {
	Street  string `dynamodbav:"street"`
	City    string `dynamodbav:"city"`
	State   string `dynamodbav:"state"`
	ZipCode string `dynamodbav:"zip_code"`
}

type statusChangeItem struct {
	Status string `dynamodbav:"status"`
	Note   string `dynamodbav:"note,omitempty"`
	At     string `dynamodbav:"at"`
}

type returnItem struct {
	ID     string `dynamodbav:"id"`
	UserID string `dynamodbav:"user_id,omitempty"`

	FullName string `dynamodbav:"full_name"`
	Email    string `dynamodbav:"email"`
	Phone    string `dynamodbav:"phone,omitempty"`

	Pickup        addressItem `dynamodbav:"pickup"`
	ReturnStation addressItem `dynamodbav:"return_station"`

	ItemSize        string `dynamodbav:"item_size"`
	AdditionalNotes string `dynamodbav:"additional_notes,omitempty"`
	QRCodeURL       string `dynamodbav:"qr_code_url"`
	ItemPhotoURL    string `dynamodbav:"item_photo_url"`

	PickupDate    string `dynamodbav:"pickup_date"`
	TimeSlot      string `dynamodbav:"time_slot"`
	ExpressPickup bool   `dynamodbav:"express_pickup"`

	AmountCents      int64  `dynamodbav:"amount_cents"`
	PaymentReference string `dynamodbav:"payment_reference"`

	Status  string             `dynamodbav:"status"`
	History []statusChangeItem `dynamodbav:"history,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ReturnDynamoRepository persists ReturnRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type ReturnDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReturnRepository = (*ReturnDynamoRepository)(nil)

func NewReturnDynamoRepository(ddb *dynamodb.Client) *ReturnDynamoRepository {
	return &ReturnDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RETURNS_TABLE", defaultReturnsTableName),
	}
}

func (r *ReturnDynamoRepository) Create(ctx context.Context, rec entities.ReturnRecord) (entities.ReturnRecord, error) {
	it := toReturnItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ReturnRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ReturnRecord{}, err
	}
	return rec, nil
}

func (r *ReturnDynamoRepository) GetByID(ctx context.Context, id string) (entities.ReturnRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ReturnRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ReturnRecord{}, nil
	}

	var it returnItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ReturnRecord{}, err
	}
	return fromReturnItem(it), nil
}

func (r *ReturnDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.ReturnRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(returnsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ReturnRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it returnItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReturnItem(it))
	}
	return items, nil
}

// UpdateStatus writes the new status and appends one history entry in a
// single conditional update. A missing item comes back as the zero record.
func (r *ReturnDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ReturnStatus, note string) (entities.ReturnRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	changeAV, err := attributevalue.MarshalList([]statusChangeItem{{
		Status: string(status),
		Note:   note,
		At:     now,
	}})
	if err != nil {
		return entities.ReturnRecord{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at, #history = list_append(if_not_exists(#history, :empty), :change)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":change":     &types.AttributeValueMemberL{Value: changeAV},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
			"#history":    "history",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ReturnRecord{}, nil
		}
		return entities.ReturnRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ReturnRecord{}, nil
	}

	var it returnItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ReturnRecord{}, err
	}
	return fromReturnItem(it), nil
}

func toReturnItem(rec entities.ReturnRecord) returnItem {
	history := make([]statusChangeItem, 0, len(rec.History))
	for _, ch := range rec.History {
		history = append(history, statusChangeItem{
			Status: string(ch.Status),
			Note:   ch.Note,
			At:     ch.At.UTC().Format(time.RFC3339Nano),
		})
	}
	return returnItem{
		ID:     rec.ID,
		UserID: rec.UserID,

		FullName: rec.FullName,
		Email:    rec.Email,
		Phone:    rec.Phone,

		Pickup:        toAddressItem(rec.Pickup),
		ReturnStation: toAddressItem(rec.ReturnStation),

		ItemSize:        string(rec.ItemSize),
		AdditionalNotes: rec.AdditionalNotes,
		QRCodeURL:       rec.QRCodeURL,
		ItemPhotoURL:    rec.ItemPhotoURL,

		PickupDate:    rec.PickupDate.UTC().Format(time.RFC3339Nano),
		TimeSlot:      string(rec.TimeSlot),
		ExpressPickup: rec.ExpressPickup,

		AmountCents:      rec.AmountCents,
		PaymentReference: rec.PaymentReference,

		Status:  string(rec.Status),
		History: history,

		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReturnItem(it returnItem) entities.ReturnRecord {
	history := make([]entities.StatusChange, 0, len(it.History))
	for _, ch := range it.History {
		at, _ := time.Parse(time.RFC3339Nano, ch.At)
		history = append(history, entities.StatusChange{
			Status: entities.ReturnStatus(ch.Status),
			Note:   ch.Note,
			At:     at,
		})
	}
	pickupDate, _ := time.Parse(time.RFC3339Nano, it.PickupDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ReturnRecord{
		ID:     it.ID,
		UserID: it.UserID,

		FullName: it.FullName,
		Email:    it.Email,
		Phone:    it.Phone,

		Pickup:        fromAddressItem(it.Pickup),
		ReturnStation: fromAddressItem(it.ReturnStation),

		ItemSize:        entities.ItemSize(it.ItemSize),
		AdditionalNotes: it.AdditionalNotes,
		QRCodeURL:       it.QRCodeURL,
		ItemPhotoURL:    it.ItemPhotoURL,

		PickupDate:    pickupDate,
		TimeSlot:      entities.TimeSlot(it.TimeSlot),
		ExpressPickup: it.ExpressPickup,

		AmountCents:      it.AmountCents,
		PaymentReference: it.PaymentReference,

		Status:  entities.ReturnStatus(it.Status),
		History: history,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode}
}

func fromAddressItem(it addressItem) entities.Address {
	return entities.Address{Street: it.Street, City: it.City, State: it.State, ZipCode: it.ZipCode}
}
