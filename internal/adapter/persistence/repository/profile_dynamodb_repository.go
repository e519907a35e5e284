package repository

import (
	"context"
	"strings"
	"time"

	"boomerang/internal/domain/entities"
	"boomerang/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "profiles"

type profileItem struct {
	UserID        string       `dynamodbav:"user_id"`
	FullName      string       `dynamodbav:"full_name,omitempty"`
	Email         string       `dynamodbav:"email,omitempty"`
	Phone         string       `dynamodbav:"phone,omitempty"`
	Address       *addressItem `dynamodbav:"address,omitempty"`
	ReturnStation *addressItem `dynamodbav:"return_station,omitempty"`
	UpdatedAt     string       `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository persists Profile entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) Get(ctx context.Context, userID string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

// Update is an upsert of only the fields the update carries. Saving a phone
// or an address from a draft must not clobber the rest of the profile.
func (r *ProfileDynamoRepository) Update(ctx context.Context, userID string, update entities.ProfileUpdate) (entities.Profile, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	sets := []string{"#updated_at = :updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}

	if update.Phone != nil {
		sets = append(sets, "#phone = :phone")
		values[":phone"] = &types.AttributeValueMemberS{Value: *update.Phone}
		names["#phone"] = "phone"
	}
	if update.Address != nil {
		av, err := attributevalue.Marshal(toAddressItem(*update.Address))
		if err != nil {
			return entities.Profile{}, err
		}
		sets = append(sets, "#address = :address")
		values[":address"] = av
		names["#address"] = "address"
	}
	if update.ReturnStation != nil {
		av, err := attributevalue.Marshal(toAddressItem(*update.ReturnStation))
		if err != nil {
			return entities.Profile{}, err
		}
		sets = append(sets, "#return_station = :return_station")
		values[":return_station"] = av
		names["#return_station"] = "return_station"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func fromProfileItem(it profileItem) entities.Profile {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	p := entities.Profile{
		UserID:    it.UserID,
		FullName:  it.FullName,
		Email:     it.Email,
		Phone:     it.Phone,
		UpdatedAt: updatedAt,
	}
	if it.Address != nil {
		addr := fromAddressItem(*it.Address)
		p.Address = &addr
	}
	if it.ReturnStation != nil {
		station := fromAddressItem(*it.ReturnStation)
		p.ReturnStation = &station
	}
	return p
}
