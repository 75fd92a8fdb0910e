package dateformatter

import (
	"encoding/json"
)

// parseInput is the payload for parse and convert operations.
type parseInput struct {
	Data string `json:"data"`
}

// formatInput is the payload for the format operation.
type formatInput struct {
	Data DateValue `json:"data"`
}

type parseOutput struct {
	Result DateValue `json:"result"`
}

type stringOutput struct {
	Result string `json:"result"`
}

// Parse parses input with the given spec and returns the date components.
func (e *Executor) Parse(spec string, is24Hour *bool, input string) (DateValue, error) {
	format, err := e.compiled(spec, is24Hour)
	if err != nil {
		return DateValue{}, NewOperationError("parse", "invalid spec", err)
	}
	date, err := format.Parse(input)
	if err != nil {
		return DateValue{}, NewOperationError("parse", "input does not match spec", err)
	}
	return FromDate(date), nil
}

// Format renders the date components with the given spec.
func (e *Executor) Format(spec string, is24Hour *bool, value DateValue) (string, error) {
	date, err := value.ToDate()
	if err != nil {
		return "", NewOperationError("format", "invalid date value", err)
	}
	format, err := e.compiled(spec, is24Hour)
	if err != nil {
		return "", NewOperationError("format", "invalid spec", err)
	}
	result, err := format.Format(date)
	if err != nil {
		return "", NewOperationError("format", "date cannot satisfy spec", err)
	}
	return result, nil
}

// Convert parses input with inSpec and re-renders it with outSpec.
func (e *Executor) Convert(inSpec, outSpec string, is24Hour *bool, input string) (string, error) {
	inFormat, err := e.compiled(inSpec, is24Hour)
	if err != nil {
		return "", NewOperationError("convert", "invalid input spec", err)
	}
	outFormat, err := e.compiled(outSpec, nil)
	if err != nil {
		return "", NewOperationError("convert", "invalid output spec", err)
	}
	date, err := inFormat.Parse(input)
	if err != nil {
		return "", NewOperationError("convert", "input does not match spec", err)
	}
	result, err := outFormat.Format(date)
	if err != nil {
		return "", NewOperationError("convert", "date cannot satisfy output spec", err)
	}
	return result, nil
}

func (e *Executor) executeParse(input []byte, params ParseParams) ([]byte, error) {
	var in parseInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, NewOperationError("parse", "invalid input payload", err)
	}
	result, err := e.Parse(params.Spec, params.Is24Hour, in.Data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(parseOutput{Result: result})
}

func (e *Executor) executeFormat(input []byte, params FormatParams) ([]byte, error) {
	var in formatInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, NewOperationError("format", "invalid input payload", err)
	}
	result, err := e.Format(params.Spec, params.Is24Hour, in.Data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(stringOutput{Result: result})
}

func (e *Executor) executeConvert(input []byte, params ConvertParams) ([]byte, error) {
	var in parseInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, NewOperationError("convert", "invalid input payload", err)
	}
	result, err := e.Convert(params.InSpec, params.OutSpec, params.Is24Hour, in.Data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(stringOutput{Result: result})
}
