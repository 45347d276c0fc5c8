package graphqljson_test

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gqlgo/gqlmodelc/graphqljson"
)

// 以下の型は gqlmodelc が生成するコードと同じ形で書いている。

// query Hero { name friends { id } }
type Hero struct {
	name    string
	friends *[]*Hero_Friend
}

var heroResponseFields = []graphqljson.ResponseField{
	{Type: graphqljson.FieldTypeString, ResponseName: "name", FieldName: "name"},
	{Type: graphqljson.FieldTypeList, ResponseName: "friends", FieldName: "friends", Optional: true},
}

func NewHero(name string, friends *[]*Hero_Friend) Hero {
	return Hero{name: name, friends: friends}
}

func (t Hero) GetName() string {
	return t.name
}

func (t Hero) GetFriends() *[]*Hero_Friend {
	return t.friends
}

func (t Hero) Marshal(w *graphqljson.Writer) error {
	if err := graphqljson.WriteRequired(w, heroResponseFields[0], t.name, graphqljson.EncodeString); err != nil {
		return err
	}
	if err := graphqljson.WriteOptional(w, heroResponseFields[1], t.friends, graphqljson.EncodeList(graphqljson.EncodeNullable(graphqljson.EncodeObject[Hero_Friend]))); err != nil {
		return err
	}
	return nil
}

func UnmarshalHero(r *graphqljson.Reader) (Hero, error) {
	name, err := graphqljson.ReadRequired(r, heroResponseFields[0], graphqljson.DecodeString)
	if err != nil {
		return Hero{}, err
	}
	friends, err := graphqljson.ReadOptional(r, heroResponseFields[1], graphqljson.DecodeList(graphqljson.DecodeNullable(graphqljson.DecodeObject(UnmarshalHero_Friend))))
	if err != nil {
		return Hero{}, err
	}
	return NewHero(name, friends), nil
}

type Hero_Friend struct {
	id string
}

var hero_FriendResponseFields = []graphqljson.ResponseField{
	{Type: graphqljson.FieldTypeString, ResponseName: "id", FieldName: "id", ScalarType: "ID"},
}

func NewHero_Friend(id string) Hero_Friend {
	return Hero_Friend{id: id}
}

func (t Hero_Friend) Marshal(w *graphqljson.Writer) error {
	if err := graphqljson.WriteRequired(w, hero_FriendResponseFields[0], t.id, graphqljson.EncodeString); err != nil {
		return err
	}
	return nil
}

func UnmarshalHero_Friend(r *graphqljson.Reader) (Hero_Friend, error) {
	id, err := graphqljson.ReadRequired(r, hero_FriendResponseFields[0], graphqljson.DecodeID)
	if err != nil {
		return Hero_Friend{}, err
	}
	return NewHero_Friend(id), nil
}

// query Search { search { __typename ... on Human { height } ... on Droid { primaryFunction } } }
type Search struct {
	typename       string
	inlineFragment Search_Search
}

var searchResponseFields = []graphqljson.ResponseField{
	{Type: graphqljson.FieldTypeString, ResponseName: "__typename", FieldName: "__typename"},
	{Type: graphqljson.FieldTypeInlineFragment, ResponseName: "__typename", FieldName: "inlineFragment", TypeConditions: []string{"Human", "Droid"}},
}

func NewSearch(typename string, inlineFragment Search_Search) Search {
	return Search{typename: typename, inlineFragment: inlineFragment}
}

func (t Search) Marshal(w *graphqljson.Writer) error {
	if err := graphqljson.WriteRequired(w, searchResponseFields[0], t.typename, graphqljson.EncodeString); err != nil {
		return err
	}
	if err := graphqljson.WriteConditional(w, searchResponseFields[1], t.inlineFragment, MarshalSearch_Search); err != nil {
		return err
	}
	return nil
}

func UnmarshalSearch(r *graphqljson.Reader) (Search, error) {
	typename, err := graphqljson.ReadRequired(r, searchResponseFields[0], graphqljson.DecodeString)
	if err != nil {
		return Search{}, err
	}
	inlineFragment, err := graphqljson.ReadConditional(r, searchResponseFields[1], UnmarshalSearch_Search)
	if err != nil {
		return Search{}, err
	}
	return NewSearch(typename, inlineFragment), nil
}

type Search_Search interface {
	graphqljson.Marshaler
	isSearch_Search()
}

func MarshalSearch_Search(w *graphqljson.Writer, v Search_Search) error {
	switch v := v.(type) {
	case Search_AsHuman:
		return v.Marshal(w)
	case Search_AsDroid:
		return v.Marshal(w)
	default:
		return &graphqljson.AmbiguousUnionBranchError{Union: "Search_Search", Value: v}
	}
}

func UnmarshalSearch_Search(typename string, r *graphqljson.Reader) (Search_Search, error) {
	switch typename {
	case "Human":
		v, err := UnmarshalSearch_AsHuman(r)
		if err != nil {
			return nil, err
		}
		return v, nil
	case "Droid":
		v, err := UnmarshalSearch_AsDroid(r)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, nil
}

type Search_AsHuman struct {
	height *float64
}

var search_AsHumanResponseFields = []graphqljson.ResponseField{
	{Type: graphqljson.FieldTypeFloat, ResponseName: "height", FieldName: "height", Optional: true},
}

var _ Search_Search = Search_AsHuman{}

func (Search_AsHuman) isSearch_Search() {}

func (t Search_AsHuman) Marshal(w *graphqljson.Writer) error {
	if err := graphqljson.WriteOptional(w, search_AsHumanResponseFields[0], t.height, graphqljson.EncodeFloat); err != nil {
		return err
	}
	return nil
}

func UnmarshalSearch_AsHuman(r *graphqljson.Reader) (Search_AsHuman, error) {
	height, err := graphqljson.ReadOptional(r, search_AsHumanResponseFields[0], graphqljson.DecodeFloat)
	if err != nil {
		return Search_AsHuman{}, err
	}
	return Search_AsHuman{height: height}, nil
}

type Search_AsDroid struct {
	primaryFunction string
}

var search_AsDroidResponseFields = []graphqljson.ResponseField{
	{Type: graphqljson.FieldTypeString, ResponseName: "primaryFunction", FieldName: "primaryFunction"},
}

var _ Search_Search = Search_AsDroid{}

func (Search_AsDroid) isSearch_Search() {}

func (t Search_AsDroid) Marshal(w *graphqljson.Writer) error {
	if err := graphqljson.WriteRequired(w, search_AsDroidResponseFields[0], t.primaryFunction, graphqljson.EncodeString); err != nil {
		return err
	}
	return nil
}

func UnmarshalSearch_AsDroid(r *graphqljson.Reader) (Search_AsDroid, error) {
	primaryFunction, err := graphqljson.ReadRequired(r, search_AsDroidResponseFields[0], graphqljson.DecodeString)
	if err != nil {
		return Search_AsDroid{}, err
	}
	return Search_AsDroid{primaryFunction: primaryFunction}, nil
}

// fragment HumanName on Human { name }
type HumanName struct {
	name string
}

const HumanNameFragmentDefinition = `fragment HumanName on Human {
	name
}`

var humanNameResponseFields = []graphqljson.ResponseField{
	{Type: graphqljson.FieldTypeString, ResponseName: "name", FieldName: "name"},
}

var _ graphqljson.Fragment = HumanName{}

func (HumanName) FragmentDefinition() string {
	return HumanNameFragmentDefinition
}

func (t HumanName) Marshal(w *graphqljson.Writer) error {
	if err := graphqljson.WriteRequired(w, humanNameResponseFields[0], t.name, graphqljson.EncodeString); err != nil {
		return err
	}
	return nil
}

func UnmarshalHumanName(r *graphqljson.Reader) (HumanName, error) {
	name, err := graphqljson.ReadRequired(r, humanNameResponseFields[0], graphqljson.DecodeString)
	if err != nil {
		return HumanName{}, err
	}
	return HumanName{name: name}, nil
}

// query Character { __typename id ...HumanName }
type Character struct {
	typename  string
	id        string
	fragments Character_Fragments
}

var characterResponseFields = []graphqljson.ResponseField{
	{Type: graphqljson.FieldTypeString, ResponseName: "__typename", FieldName: "__typename"},
	{Type: graphqljson.FieldTypeString, ResponseName: "id", FieldName: "id", ScalarType: "ID"},
	{Type: graphqljson.FieldTypeFragments, FieldName: "fragments"},
}

func (t Character) Marshal(w *graphqljson.Writer) error {
	if err := graphqljson.WriteRequired(w, characterResponseFields[0], t.typename, graphqljson.EncodeString); err != nil {
		return err
	}
	if err := graphqljson.WriteRequired(w, characterResponseFields[1], t.id, graphqljson.EncodeString); err != nil {
		return err
	}
	if err := t.fragments.Marshal(w); err != nil {
		return err
	}
	return nil
}

func UnmarshalCharacter(r *graphqljson.Reader) (Character, error) {
	typename, err := graphqljson.ReadRequired(r, characterResponseFields[0], graphqljson.DecodeString)
	if err != nil {
		return Character{}, err
	}
	id, err := graphqljson.ReadRequired(r, characterResponseFields[1], graphqljson.DecodeID)
	if err != nil {
		return Character{}, err
	}
	fragments, err := UnmarshalCharacter_Fragments(r)
	if err != nil {
		return Character{}, err
	}
	return Character{typename: typename, id: id, fragments: fragments}, nil
}

type Character_Fragments struct {
	humanName *HumanName
}

var character_FragmentsResponseFields = []graphqljson.ResponseField{
	{Type: graphqljson.FieldTypeFragment, ResponseName: "__typename", FieldName: "HumanName", Optional: true, TypeConditions: []string{"Human"}},
}

func (t Character_Fragments) Marshal(w *graphqljson.Writer) error {
	if t.humanName != nil {
		if err := t.humanName.Marshal(w); err != nil {
			return err
		}
	}
	return nil
}

func UnmarshalCharacter_Fragments(r *graphqljson.Reader) (Character_Fragments, error) {
	humanName, err := graphqljson.ReadOptionalFragment(r, character_FragmentsResponseFields[0], UnmarshalHumanName)
	if err != nil {
		return Character_Fragments{}, err
	}
	return Character_Fragments{humanName: humanName}, nil
}

// Email は graphql.Marshaler と graphql.Unmarshaler を実装するカスタムスカラー
type Email string

func (e *Email) UnmarshalGQL(v any) error {
	s, ok := v.(string)
	if !ok {
		return errors.New("email must be a string")
	}
	if !strings.Contains(s, "@") {
		return fmt.Errorf("invalid email %q", s)
	}
	*e = Email(s)
	return nil
}

func (e Email) MarshalGQL(w io.Writer) {
	_, _ = io.WriteString(w, strconv.Quote(string(e)))
}

// Point は JSON でエンコードされるカスタムスカラー
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func ptr[T any](v T) *T {
	return &v
}
